// Package analytics derives chart-ready shapes from processes and their
// stages: stage-name totals, latest-stage distribution, cumulative timelines,
// transition graphs for flow diagrams, and summary metrics.
//
// Every function here is pure and synchronous: identical input always yields
// identical output, and no hidden state survives a call. Callers that rerun
// aggregations on unchanged data should wrap them in a Memo.
package analytics

import (
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// StageCount is one entry of a per-stage-name tally.
type StageCount struct {
	Name  model.StageName `json:"name"`
	Count int             `json:"count"`
}

// LabelCount is one entry of a labeled distribution (pie/status charts).
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ActiveLabel classifies processes that have no stages yet in the
// latest-stage distribution.
const ActiveLabel = "Active"

// StageCounts tallies every stage occurrence across all processes by stage
// name. The result is sorted descending by count; ties break by canonical
// stage rank, then name, so output is deterministic. Zero-count entries never
// appear, and empty input yields an empty (nil) result.
func StageCounts(details []model.ProcessDetail) []StageCount {
	counts := make(map[model.StageName]int)
	for _, d := range details {
		for _, s := range d.Stages {
			counts[s.Name]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	out := make([]StageCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, StageCount{Name: name, Count: n})
	}
	sortStageCounts(out)
	return out
}

// LatestStageDistribution classifies every process by its most advanced
// stage: the stage with the maximum order value, ties broken by first
// position in the input slice. Processes without stages count under
// ActiveLabel. Exactly one classification is produced per process, so the
// counts always sum to len(details). Sorted descending by count with the
// same tie-breaking as StageCounts.
func LatestStageDistribution(details []model.ProcessDetail) []LabelCount {
	counts := make(map[string]int)
	for _, d := range details {
		counts[latestStageLabel(d.Stages)]++
	}
	if len(counts) == 0 {
		return nil
	}

	out := make([]LabelCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, LabelCount{Label: label, Count: n})
	}
	sortLabelCounts(out)
	return out
}

// latestStageLabel picks the stage with the strictly greatest order so the
// first occurrence wins on ties.
func latestStageLabel(stages []model.Stage) string {
	if len(stages) == 0 {
		return ActiveLabel
	}
	best := stages[0]
	for _, s := range stages[1:] {
		if s.Order > best.Order {
			best = s
		}
	}
	return string(best.Name)
}
