package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// DefaultDetailFetchLimit bounds how many per-process detail requests run
// concurrently when assembling a dashboard.
const DefaultDetailFetchLimit = 5

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Processes  core.ProcessRepository
	FetchLimit int
	Logger     *slog.Logger
}

// DashboardService assembles the full per-user process/stage data set the
// dashboard and charts work from. Detail fetches fan out concurrently with
// a bounded limit; any single failure fails the whole fetch.
type DashboardService struct {
	processes core.ProcessRepository
	limit     int
	logger    *slog.Logger
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	limit := opts.FetchLimit
	if limit <= 0 {
		limit = DefaultDetailFetchLimit
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{processes: opts.Processes, limit: limit, logger: logger}
}

// Details returns all of the acting user's processes with their stages.
// Results keep the order of the process list.
func (s *DashboardService) Details(ctx context.Context) ([]model.ProcessDetail, error) {
	procs, err := s.processes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	if len(procs) == 0 {
		return nil, nil
	}

	details := make([]model.ProcessDetail, len(procs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for i, p := range procs {
		g.Go(func() error {
			d, err := s.processes.GetDetail(gctx, p.ID)
			if err != nil {
				return fmt.Errorf("detail for process %d: %w", p.ID, err)
			}
			details[i] = *d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "dashboard details assembled", "processes", len(details))
	return details, nil
}
