package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offertrack/track-ui-api/internal/domain/model"
)

func day(d int) time.Time {
	return time.Date(2025, 4, d, 12, 0, 0, 0, time.UTC)
}

func detail(id int64, status model.ProcessStatus, stages ...model.Stage) model.ProcessDetail {
	for i := range stages {
		stages[i].ProcessID = id
		stages[i].ID = id*100 + int64(i)
		if stages[i].Order == 0 {
			stages[i].Order = i + 1
		}
	}
	return model.ProcessDetail{
		Process: model.Process{ID: id, Company: "Co", Status: status, UpdatedAt: day(1)},
		Stages:  stages,
	}
}

func st(name model.StageName, d int) model.Stage {
	return model.Stage{Name: name, Date: day(d), UpdatedAt: day(d)}
}

// twoProcessFixture is the worked example: P1 Applied(d1)→OA(d2)→Offer(d5),
// P2 Applied(d1)→Phone Screen(d3)→Reject(d4).
func twoProcessFixture() []model.ProcessDetail {
	return []model.ProcessDetail{
		detail(1, model.ProcessStatusCompleted,
			st(model.StageApplied, 1), st(model.StageOA, 2), st(model.StageOffer, 5)),
		detail(2, model.ProcessStatusRejected,
			st(model.StageApplied, 1), st(model.StagePhoneScreen, 3), st(model.StageReject, 4)),
	}
}

func TestStageCounts(t *testing.T) {
	got := StageCounts(twoProcessFixture())
	require.Len(t, got, 5)

	byName := make(map[model.StageName]int)
	total := 0
	for _, c := range got {
		byName[c.Name] = c.Count
		total += c.Count
	}
	assert.Equal(t, 6, total, "counts must sum to the number of stage records")
	assert.Equal(t, 2, byName[model.StageApplied])
	assert.Equal(t, 1, byName[model.StageOA])
	assert.Equal(t, 1, byName[model.StageOffer])
	assert.Equal(t, 1, byName[model.StagePhoneScreen])
	assert.Equal(t, 1, byName[model.StageReject])

	assert.Equal(t, model.StageApplied, got[0].Name, "highest count first")
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Count, got[i].Count)
	}
}

func TestStageCounts_Empty(t *testing.T) {
	assert.Empty(t, StageCounts(nil))
	assert.Empty(t, StageCounts([]model.ProcessDetail{detail(1, model.ProcessStatusActive)}))
}

func TestLatestStageDistribution(t *testing.T) {
	got := LatestStageDistribution(twoProcessFixture())
	byLabel := make(map[string]int)
	total := 0
	for _, c := range got {
		byLabel[c.Label] = c.Count
		total += c.Count
	}
	assert.Equal(t, 2, total, "one classification per process")
	assert.Equal(t, 1, byLabel["Offer"])
	assert.Equal(t, 1, byLabel["Reject"])
}

func TestLatestStageDistribution_StagelessIsActive(t *testing.T) {
	details := append(twoProcessFixture(), detail(3, model.ProcessStatusActive))
	got := LatestStageDistribution(details)

	byLabel := make(map[string]int)
	total := 0
	for _, c := range got {
		byLabel[c.Label] = c.Count
		total += c.Count
	}
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, byLabel[ActiveLabel])
}

func TestLatestStageDistribution_OrderTieKeepsFirst(t *testing.T) {
	// Same order value on both stages: the first in input order wins.
	d := detail(1, model.ProcessStatusActive)
	d.Stages = []model.Stage{
		{ID: 1, Name: model.StageOA, Order: 2, Date: day(2)},
		{ID: 2, Name: model.StagePhoneScreen, Order: 2, Date: day(3)},
	}
	got := LatestStageDistribution([]model.ProcessDetail{d})
	require.Len(t, got, 1)
	assert.Equal(t, "OA", got[0].Label)
}

// Distribution (latest stage only) and StageCounts (every stage) must stay
// independent: they disagree on any process with more than one stage.
func TestDistributionAndCountsAreDistinct(t *testing.T) {
	details := twoProcessFixture()
	counts := StageCounts(details)
	dist := LatestStageDistribution(details)

	sumCounts := 0
	for _, c := range counts {
		sumCounts += c.Count
	}
	sumDist := 0
	for _, c := range dist {
		sumDist += c.Count
	}
	assert.Equal(t, 6, sumCounts)
	assert.Equal(t, 2, sumDist)
}

func TestAggregatorsAreIdempotent(t *testing.T) {
	details := twoProcessFixture()
	assert.Equal(t, StageCounts(details), StageCounts(details))
	assert.Equal(t, LatestStageDistribution(details), LatestStageDistribution(details))
	assert.Equal(t, Flow(details), Flow(details))
	assert.Equal(t, Timeline(details, time.UTC), Timeline(details, time.UTC))
	assert.Equal(t, Summarize(details), Summarize(details))
}
