package testutil

import (
	"time"

	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// ProcessBuilder provides a fluent interface for building Process fixtures.
type ProcessBuilder struct {
	process model.Process
	stages  []model.Stage
}

// NewProcess creates a ProcessBuilder with sensible defaults.
func NewProcess(id int64) *ProcessBuilder {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &ProcessBuilder{
		process: model.Process{
			ID:        id,
			Company:   "Acme",
			Status:    model.ProcessStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithCompany sets the company name.
func (b *ProcessBuilder) WithCompany(company string) *ProcessBuilder {
	b.process.Company = company
	return b
}

// WithPosition sets the position.
func (b *ProcessBuilder) WithPosition(position string) *ProcessBuilder {
	b.process.Position = &position
	return b
}

// WithStatus sets the derived status.
func (b *ProcessBuilder) WithStatus(status model.ProcessStatus) *ProcessBuilder {
	b.process.Status = status
	return b
}

// Shared marks the process public under the given share id.
func (b *ProcessBuilder) Shared(shareID string) *ProcessBuilder {
	b.process.IsPublic = true
	b.process.ShareID = &shareID
	return b
}

// WithStage appends a stage; order defaults to the append position.
func (b *ProcessBuilder) WithStage(name model.StageName, date time.Time) *ProcessBuilder {
	order := len(b.stages) + 1
	b.stages = append(b.stages, model.Stage{
		ID:        int64(order),
		ProcessID: b.process.ID,
		Name:      name,
		Date:      date,
		Order:     order,
		CreatedAt: date,
		UpdatedAt: date,
	})
	return b
}

// Build returns the process without stages.
func (b *ProcessBuilder) Build() *model.Process {
	p := b.process
	return &p
}

// BuildDetail returns the process with its stages.
func (b *ProcessBuilder) BuildDetail() *model.ProcessDetail {
	stages := make([]model.Stage, len(b.stages))
	copy(stages, b.stages)
	return &model.ProcessDetail{Process: b.process, Stages: stages}
}

// Day returns midnight UTC for 2025-01-<day>, a convenient stage date.
func Day(day int) time.Time {
	return time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC)
}
