package analytics

import (
	"sort"
	"time"

	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// MinTimelineDays is the minimum number of distinct calendar days a timeline
// needs before it is worth charting. The aggregator still returns shorter
// results; callers decide how to present insufficient data.
const MinTimelineDays = 3

// TimelinePoint is one per-day snapshot of cumulative stage counts.
// Counts only contains stage names that have appeared on or before Day;
// a name absent from an earlier day's map has simply not occurred yet.
type TimelinePoint struct {
	Day    string                  `json:"day"`
	Counts map[model.StageName]int `json:"counts"`
}

// Timeline builds a cumulative multi-series day sequence: for every distinct
// calendar day carrying at least one stage, the count per stage name of all
// stages dated at or before the end of that day. Counts are monotonically
// non-decreasing per name across days. Stages sort by stage_date here, never
// by order. Days are truncated in loc (nil means time.Local). Stages with a
// zero date are skipped: the upstream decoder rejects malformed timestamps,
// so a zero value only ever means the field was missing.
func Timeline(details []model.ProcessDetail, loc *time.Location) []TimelinePoint {
	if loc == nil {
		loc = time.Local
	}

	type occurrence struct {
		name model.StageName
		day  string
	}
	var flat []occurrence
	for _, d := range details {
		for _, s := range d.Stages {
			if s.Date.IsZero() {
				continue
			}
			flat = append(flat, occurrence{
				name: s.Name,
				day:  s.Date.In(loc).Format("2006-01-02"),
			})
		}
	}
	if len(flat) == 0 {
		return nil
	}

	perDay := make(map[string]map[model.StageName]int)
	for _, o := range flat {
		if perDay[o.day] == nil {
			perDay[o.day] = make(map[model.StageName]int)
		}
		perDay[o.day][o.name]++
	}

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	running := make(map[model.StageName]int)
	out := make([]TimelinePoint, 0, len(days))
	for _, day := range days {
		for name, n := range perDay[day] {
			running[name] += n
		}
		snapshot := make(map[model.StageName]int, len(running))
		for name, n := range running {
			snapshot[name] = n
		}
		out = append(out, TimelinePoint{Day: day, Counts: snapshot})
	}
	return out
}
