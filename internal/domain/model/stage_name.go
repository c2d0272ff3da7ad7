//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "strings"

// StageName is the name of an interview stage. Stored as free text upstream;
// the canonical set below drives ordering and display colors, with StageOther
// as the guaranteed fallback for anything unrecognized.
type StageName string

const (
	StageApplied     StageName = "Applied"
	StageOA          StageName = "OA"
	StagePhoneScreen StageName = "Phone Screen"
	StageTechnical   StageName = "Technical Interview"
	StageHM          StageName = "HM Interview"
	StageFinal       StageName = "Final Interview"
	StageOnsite      StageName = "On-site Interview"
	StageTakeHome    StageName = "Take-home Assignment"
	StageSystemDsgn  StageName = "System Design"
	StageBehavioral  StageName = "Behavioral Interview"
	StageCoding      StageName = "Coding Challenge"
	StageOffer       StageName = "Offer"
	StageReject      StageName = "Reject"
	StageOther       StageName = "Other"
)

// canonicalStageOrder is the typical pipeline flow, used to order flow-graph
// nodes. Unrecognized names sort after these in first-seen order.
var canonicalStageOrder = []StageName{
	StageApplied,
	StageOA,
	StagePhoneScreen,
	StageTechnical,
	StageHM,
	StageFinal,
	StageOnsite,
	StageTakeHome,
	StageSystemDsgn,
	StageBehavioral,
	StageCoding,
	StageOffer,
	StageReject,
	StageOther,
}

var canonicalStageRank = func() map[StageName]int {
	m := make(map[StageName]int, len(canonicalStageOrder))
	for i, n := range canonicalStageOrder {
		m[n] = i
	}
	return m
}()

// CanonicalStageOrder returns the canonical pipeline ordering of well-known
// stage names. The returned slice is a copy.
func CanonicalStageOrder() []StageName {
	out := make([]StageName, len(canonicalStageOrder))
	copy(out, canonicalStageOrder)
	return out
}

// Known reports whether the name is one of the canonical stage names.
func (n StageName) Known() bool {
	_, ok := canonicalStageRank[n]
	return ok
}

// Canonical returns the name itself when it is well-known, StageOther otherwise.
func (n StageName) Canonical() StageName {
	if n.Known() {
		return n
	}
	return StageOther
}

// Rank returns the position of the name in the canonical ordering and true,
// or 0 and false for unrecognized names.
func (n StageName) Rank() (int, bool) {
	r, ok := canonicalStageRank[n]
	return r, ok
}

// NormalizeStageName trims the input and matches it case-insensitively
// against the canonical set. Unrecognized names are preserved verbatim
// (trimmed) so they can still appear in aggregations.
func NormalizeStageName(raw string) StageName {
	trimmed := strings.TrimSpace(raw)
	for _, n := range canonicalStageOrder {
		if strings.EqualFold(trimmed, string(n)) {
			return n
		}
	}
	return StageName(trimmed)
}
