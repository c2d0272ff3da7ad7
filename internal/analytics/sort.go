package analytics

import (
	"sort"

	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// stageNameLess orders stage names by canonical rank first, then
// lexicographically for names outside the canonical set.
func stageNameLess(a, b model.StageName) bool {
	ra, aKnown := a.Rank()
	rb, bKnown := b.Rank()
	switch {
	case aKnown && bKnown:
		return ra < rb
	case aKnown:
		return true
	case bKnown:
		return false
	default:
		return a < b
	}
}

func sortStageCounts(out []StageCount) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return stageNameLess(out[i].Name, out[j].Name)
	})
}

func sortLabelCounts(out []LabelCount) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return stageNameLess(model.StageName(out[i].Label), model.StageName(out[j].Label))
	})
}
