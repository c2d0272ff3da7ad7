package analytics

import (
	"math"

	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// Summary holds the dashboard's headline numbers.
type Summary struct {
	TotalProcesses int                         `json:"total_processes"`
	ByStatus       map[model.ProcessStatus]int `json:"by_status"`
	// SuccessRatePct is completed/(completed+rejected) as a whole percent,
	// 0 when no process has reached a terminal status.
	SuccessRatePct int `json:"success_rate_pct"`
	// AvgStagesPerProcess is rounded to one decimal.
	AvgStagesPerProcess float64 `json:"avg_stages_per_process"`
	// AvgCompletionDays averages first-to-last stage spans (by stage_date)
	// over completed processes that have at least one stage. Completed
	// processes without stages are excluded from the denominator rather than
	// counted as zero-duration, which would drag the average down.
	AvgCompletionDays float64 `json:"avg_completion_days"`
}

// Summarize computes the dashboard summary over all processes.
func Summarize(details []model.ProcessDetail) Summary {
	s := Summary{
		TotalProcesses: len(details),
		ByStatus:       make(map[model.ProcessStatus]int),
	}

	totalStages := 0
	completionDays := 0.0
	completedWithStages := 0
	for _, d := range details {
		s.ByStatus[d.Status]++
		totalStages += len(d.Stages)

		if d.Status != model.ProcessStatusCompleted {
			continue
		}
		dated := datedStages(d.Stages)
		if len(dated) == 0 {
			continue
		}
		sorted := model.StagesByDate(dated)
		span := sorted[len(sorted)-1].Date.Sub(sorted[0].Date)
		completionDays += span.Hours() / 24
		completedWithStages++
	}

	completed := s.ByStatus[model.ProcessStatusCompleted]
	rejected := s.ByStatus[model.ProcessStatusRejected]
	if completed+rejected > 0 {
		s.SuccessRatePct = int(math.Round(float64(completed) / float64(completed+rejected) * 100))
	}
	if len(details) > 0 {
		s.AvgStagesPerProcess = roundTo1(float64(totalStages) / float64(len(details)))
	}
	if completedWithStages > 0 {
		s.AvgCompletionDays = roundTo1(completionDays / float64(completedWithStages))
	}
	return s
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
