package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

// StageServiceOptions groups dependencies for StageService.
type StageServiceOptions struct {
	Stages core.StageRepository
}

// StageService orchestrates stage CRUD. Stage names are matched against the
// canonical set on write so charts aggregate consistent labels.
type StageService struct {
	stages core.StageRepository
}

// NewStageService constructs a new StageService.
func NewStageService(opts StageServiceOptions) *StageService {
	return &StageService{stages: opts.Stages}
}

// ListByProcess returns a process's stages sorted by order.
func (s *StageService) ListByProcess(ctx context.Context, processID int64) ([]*model.Stage, error) {
	stages, err := s.stages.ListByProcess(ctx, processID)
	if err != nil {
		return nil, fmt.Errorf("list stages for process %d: %w", processID, err)
	}
	sort.SliceStable(stages, func(i, j int) bool {
		if stages[i].Order != stages[j].Order {
			return stages[i].Order < stages[j].Order
		}
		return stages[i].ID < stages[j].ID
	})
	return stages, nil
}

// Create validates and adds a stage. When no explicit order is given the
// stage is appended after the process's current last stage.
func (s *StageService) Create(ctx context.Context, req *model.CreateStageRequest) (*model.Stage, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if req.Order == nil {
		existing, err := s.stages.ListByProcess(ctx, req.ProcessID)
		if err != nil {
			return nil, fmt.Errorf("resolve next stage order: %w", err)
		}
		next := 1
		for _, stage := range existing {
			if stage.Order >= next {
				next = stage.Order + 1
			}
		}
		req.Order = &next
	}

	created, err := s.stages.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create stage: %w", err)
	}
	return created, nil
}

// Update validates and applies a partial update to a stage.
func (s *StageService) Update(ctx context.Context, id int64, req *model.UpdateStageRequest) (*model.Stage, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	updated, err := s.stages.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update stage %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes a stage.
func (s *StageService) Delete(ctx context.Context, id int64) error {
	if err := s.stages.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete stage %d: %w", id, err)
	}
	return nil
}
