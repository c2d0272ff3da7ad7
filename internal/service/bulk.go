package service

import (
	"context"
	"log/slog"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

// BulkResult reports the outcome of one item of a bulk operation.
type BulkResult struct {
	ID    int64  `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// BulkServiceOptions groups dependencies for BulkService.
type BulkServiceOptions struct {
	Processes core.ProcessRepository
	Logger    *slog.Logger
}

// BulkService applies one mutation to many processes. Items are issued
// sequentially and each request is awaited before the next starts; a failed
// item is recorded and does not abort the remainder.
type BulkService struct {
	processes core.ProcessRepository
	logger    *slog.Logger
}

// NewBulkService constructs a new BulkService.
func NewBulkService(opts BulkServiceOptions) *BulkService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &BulkService{processes: opts.Processes, logger: logger}
}

// DeleteProcesses removes the given processes one at a time, in order.
// It returns the results accumulated so far if the context is canceled.
func (s *BulkService) DeleteProcesses(ctx context.Context, ids []int64) ([]BulkResult, error) {
	if len(ids) == 0 {
		return nil, apperrors.Validation("at least one process id is required")
	}

	results := make([]BulkResult, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return results, apperrors.Wrap(err, apperrors.ErrCodeCanceled, "bulk delete interrupted")
		}
		if err := s.processes.Delete(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "bulk delete item failed", "process_id", id, "error", err)
			results = append(results, BulkResult{ID: id, Error: err.Error()})
			continue
		}
		results = append(results, BulkResult{ID: id, OK: true})
	}
	return results, nil
}

// UpdateStatus sets the same status on each given process, one at a time.
func (s *BulkService) UpdateStatus(ctx context.Context, ids []int64, status model.ProcessStatus) ([]BulkResult, error) {
	if len(ids) == 0 {
		return nil, apperrors.Validation("at least one process id is required")
	}
	parsed, ok := model.ParseProcessStatus(string(status))
	if !ok {
		return nil, apperrors.ValidationField("status", "status must be one of active, completed, rejected")
	}

	results := make([]BulkResult, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return results, apperrors.Wrap(err, apperrors.ErrCodeCanceled, "bulk status update interrupted")
		}
		st := parsed
		if _, err := s.processes.Update(ctx, id, &model.UpdateProcessRequest{Status: &st}); err != nil {
			s.logger.WarnContext(ctx, "bulk status update item failed", "process_id", id, "error", err)
			results = append(results, BulkResult{ID: id, Error: err.Error()})
			continue
		}
		results = append(results, BulkResult{ID: id, OK: true})
	}
	return results, nil
}
