// Package service contains the business logic layer. Services depend on the
// port interfaces in internal/core and are wired together in bootstrap.
package service

import (
	"context"
	"fmt"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

// ProcessServiceOptions groups dependencies for ProcessService.
type ProcessServiceOptions struct {
	Repo core.ProcessRepository
}

// ProcessService orchestrates application process CRUD with validation.
type ProcessService struct {
	processes core.ProcessRepository
}

// NewProcessService constructs a new ProcessService.
func NewProcessService(opts ProcessServiceOptions) *ProcessService {
	return &ProcessService{processes: opts.Repo}
}

// List returns all of the acting user's processes.
func (s *ProcessService) List(ctx context.Context) ([]*model.Process, error) {
	return s.processes.List(ctx)
}

// GetByID returns one process.
func (s *ProcessService) GetByID(ctx context.Context, id int64) (*model.Process, error) {
	return s.processes.GetByID(ctx, id)
}

// GetDetail returns a process with its stages.
func (s *ProcessService) GetDetail(ctx context.Context, id int64) (*model.ProcessDetail, error) {
	return s.processes.GetDetail(ctx, id)
}

// Create validates and creates a process.
func (s *ProcessService) Create(ctx context.Context, req *model.CreateProcessRequest) (*model.Process, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	created, err := s.processes.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create process: %w", err)
	}
	return created, nil
}

// Update validates and applies a partial update.
func (s *ProcessService) Update(ctx context.Context, id int64, req *model.UpdateProcessRequest) (*model.Process, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	updated, err := s.processes.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update process %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes a process and its stages.
func (s *ProcessService) Delete(ctx context.Context, id int64) error {
	if err := s.processes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete process %d: %w", id, err)
	}
	return nil
}
