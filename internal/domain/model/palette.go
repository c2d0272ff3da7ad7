package model

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultStageColors matches the product's chart palette.
var defaultStageColors = map[StageName]string{
	StageApplied:     "#FDE68A",
	StageOA:          "#3B82F6",
	StagePhoneScreen: "#60A5FA",
	StageTechnical:   "#818CF8",
	StageHM:          "#A78BFA",
	StageFinal:       "#C084FC",
	StageOnsite:      "#E879F9",
	StageTakeHome:    "#F472B6",
	StageSystemDsgn:  "#FB7185",
	StageBehavioral:  "#F87171",
	StageCoding:      "#EF4444",
	StageOffer:       "#10B981",
	StageReject:      "#EF4444",
	StageOther:       "#6B7280",
}

// fallbackStageColor is used for stage names without a palette entry.
const fallbackStageColor = "#8884d8"

// StagePalette maps stage names to display colors and optional free-text
// aliases to canonical names. Deployments can override both via a YAML file.
type StagePalette struct {
	colors  map[StageName]string
	aliases map[string]StageName
}

// paletteFile is the YAML shape of a palette override file.
type paletteFile struct {
	Colors  map[string]string `yaml:"colors"`
	Aliases map[string]string `yaml:"aliases"`
}

// DefaultStagePalette returns the built-in palette with no aliases.
func DefaultStagePalette() *StagePalette {
	colors := make(map[StageName]string, len(defaultStageColors))
	for k, v := range defaultStageColors {
		colors[k] = v
	}
	return &StagePalette{colors: colors, aliases: map[string]StageName{}}
}

// LoadStagePalette reads a YAML palette override and merges it over the
// defaults. Unknown alias targets are rejected.
func LoadStagePalette(r io.Reader) (*StagePalette, error) {
	var file paletteFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode palette: %w", err)
	}

	p := DefaultStagePalette()
	for name, color := range file.Colors {
		color = strings.TrimSpace(color)
		if color == "" {
			continue
		}
		p.colors[NormalizeStageName(name)] = color
	}
	for alias, target := range file.Aliases {
		canonical := NormalizeStageName(target)
		if !canonical.Known() {
			return nil, fmt.Errorf("alias %q targets unknown stage %q", alias, target)
		}
		p.aliases[strings.ToLower(strings.TrimSpace(alias))] = canonical
	}
	return p, nil
}

// LoadStagePaletteFile loads a palette override from disk. An empty path
// returns the defaults.
func LoadStagePaletteFile(path string) (*StagePalette, error) {
	if path == "" {
		return DefaultStagePalette(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open palette file: %w", err)
	}
	defer f.Close()
	return LoadStagePalette(f)
}

// Color returns the display color for a stage name.
func (p *StagePalette) Color(n StageName) string {
	if c, ok := p.colors[n]; ok {
		return c
	}
	if c, ok := p.colors[n.Canonical()]; ok {
		return c
	}
	return fallbackStageColor
}

// Normalize resolves aliases before falling back to NormalizeStageName.
func (p *StagePalette) Normalize(raw string) StageName {
	if target, ok := p.aliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return target
	}
	return NormalizeStageName(raw)
}
