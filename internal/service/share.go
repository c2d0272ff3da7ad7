package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

// ShareServiceOptions groups dependencies for ShareService.
type ShareServiceOptions struct {
	Processes core.ProcessRepository
	Charts    *ChartService
}

// ShareService manages public share links for processes and resolves them
// for unauthenticated viewers.
type ShareService struct {
	processes core.ProcessRepository
	charts    *ChartService
}

// NewShareService constructs a new ShareService.
func NewShareService(opts ShareServiceOptions) *ShareService {
	return &ShareService{processes: opts.Processes, charts: opts.Charts}
}

// SharedProcess is the public view of one shared process: the process with
// its stages plus ready-to-render charts over that single process.
type SharedProcess struct {
	Process model.ProcessDetail `json:"process"`
	Charts  *ChartBundle        `json:"charts"`
}

// SetPublic toggles sharing for the acting user's process. Enabling returns
// the process carrying its share id; disabling invalidates the old link.
func (s *ShareService) SetPublic(ctx context.Context, id int64, public bool) (*model.Process, error) {
	proc, err := s.processes.SetPublic(ctx, id, public)
	if err != nil {
		return nil, fmt.Errorf("set process %d public=%t: %w", id, public, err)
	}
	return proc, nil
}

// Resolve returns the shared view for a share id. No authentication is
// required; unknown or disabled share ids yield a not-found error.
func (s *ShareService) Resolve(ctx context.Context, shareID string) (*SharedProcess, error) {
	shareID = strings.TrimSpace(shareID)
	if shareID == "" {
		return nil, apperrors.Validation("share id is required")
	}

	detail, err := s.processes.GetByShareID(ctx, shareID)
	if err != nil {
		return nil, fmt.Errorf("resolve share %s: %w", shareID, err)
	}
	if !detail.IsPublic {
		return nil, apperrors.NotFound("shared process not found")
	}

	return &SharedProcess{
		Process: *detail,
		Charts:  s.charts.BundleFor([]model.ProcessDetail{*detail}),
	}, nil
}
