package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/offertrack/track-ui-api/internal/analytics"
	"github.com/offertrack/track-ui-api/internal/domain/auth"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// DetailSource provides the acting user's processes with stages.
// DashboardService is the usual implementation.
type DetailSource interface {
	Details(ctx context.Context) ([]model.ProcessDetail, error)
}

// ChartServiceOptions groups dependencies for ChartService.
type ChartServiceOptions struct {
	Source  DetailSource
	Palette *model.StagePalette
	// Location is the timezone timeline days are truncated in.
	// Nil means time.Local.
	Location *time.Location
}

// ChartService turns process/stage data into chart-ready payloads with
// display colors attached. Aggregations are memoized per user against an
// input fingerprint, so an unchanged data set never recomputes.
type ChartService struct {
	source  DetailSource
	palette *model.StagePalette
	loc     *time.Location

	mu    sync.Mutex
	memos map[string]*chartMemos
}

// maxMemoUsers bounds the per-user memo map. Memos are pure caches, so the
// whole map is reset when it fills rather than evicted piecemeal.
const maxMemoUsers = 1024

// chartMemos holds one user's memoized aggregations.
type chartMemos struct {
	stageCounts *analytics.Memo[[]analytics.StageCount]
	latest      *analytics.Memo[[]analytics.LabelCount]
	timeline    *analytics.Memo[[]analytics.TimelinePoint]
	flow        *analytics.Memo[analytics.FlowGraph]
	summary     *analytics.Memo[analytics.Summary]
}

func newChartMemos(loc *time.Location) *chartMemos {
	return &chartMemos{
		stageCounts: analytics.NewMemo(analytics.StageCounts),
		latest:      analytics.NewMemo(analytics.LatestStageDistribution),
		timeline: analytics.NewMemo(func(d []model.ProcessDetail) []analytics.TimelinePoint {
			return analytics.Timeline(d, loc)
		}),
		flow:    analytics.NewMemo(analytics.Flow),
		summary: analytics.NewMemo(analytics.Summarize),
	}
}

// NewChartService constructs a new ChartService.
func NewChartService(opts ChartServiceOptions) *ChartService {
	palette := opts.Palette
	if palette == nil {
		palette = model.DefaultStagePalette()
	}
	return &ChartService{
		source:  opts.Source,
		palette: palette,
		loc:     opts.Location,
		memos:   make(map[string]*chartMemos),
	}
}

// StageCountEntry is one colored bar of the stage-counts chart.
type StageCountEntry struct {
	Name  model.StageName `json:"name"`
	Count int             `json:"count"`
	Color string          `json:"color"`
}

// StatusEntry is one colored slice of the latest-stage distribution chart.
type StatusEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// TimelineSeries names one stage series of the timeline chart.
type TimelineSeries struct {
	Name  model.StageName `json:"name"`
	Color string          `json:"color"`
}

// TimelineChart is the cumulative multi-series timeline payload.
// Insufficient flags data sets spanning too few distinct days to chart.
type TimelineChart struct {
	Series       []TimelineSeries          `json:"series"`
	Points       []analytics.TimelinePoint `json:"points"`
	Insufficient bool                      `json:"insufficient"`
}

// FlowNodeEntry is one colored node of the flow chart.
type FlowNodeEntry struct {
	Name  model.StageName `json:"name"`
	Count int             `json:"count"`
	Color string          `json:"color"`
}

// FlowChart is the Sankey-style node/link payload.
type FlowChart struct {
	Nodes []FlowNodeEntry      `json:"nodes"`
	Links []analytics.FlowEdge `json:"links"`
}

// Dashboard bundles the headline metrics with the overview charts.
type Dashboard struct {
	Summary     analytics.Summary `json:"summary"`
	StageCounts []StageCountEntry `json:"stage_counts"`
	Statuses    []StatusEntry     `json:"statuses"`
}

func (s *ChartService) memosFor(ctx context.Context) *chartMemos {
	userID := auth.UserIDFromContext(ctx)
	if userID == "" {
		// Anonymous requests share no memo; compute fresh.
		return newChartMemos(s.loc)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.memos[userID]
	if !ok {
		if len(s.memos) >= maxMemoUsers {
			s.memos = make(map[string]*chartMemos)
		}
		m = newChartMemos(s.loc)
		s.memos[userID] = m
	}
	return m
}

func (s *ChartService) details(ctx context.Context) ([]model.ProcessDetail, error) {
	details, err := s.source.Details(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch chart data: %w", err)
	}
	return details, nil
}

// StageCounts returns the per-stage-name totals chart.
func (s *ChartService) StageCounts(ctx context.Context) ([]StageCountEntry, error) {
	details, err := s.details(ctx)
	if err != nil {
		return nil, err
	}
	return s.colorStageCounts(s.memosFor(ctx).stageCounts.Get(details)), nil
}

// StatusDistribution returns the latest-stage distribution chart.
func (s *ChartService) StatusDistribution(ctx context.Context) ([]StatusEntry, error) {
	details, err := s.details(ctx)
	if err != nil {
		return nil, err
	}
	return s.colorLabelCounts(s.memosFor(ctx).latest.Get(details)), nil
}

// Timeline returns the cumulative stage timeline chart.
func (s *ChartService) Timeline(ctx context.Context) (*TimelineChart, error) {
	details, err := s.details(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildTimeline(s.memosFor(ctx).timeline.Get(details)), nil
}

// Flow returns the stage transition flow chart.
func (s *ChartService) Flow(ctx context.Context) (*FlowChart, error) {
	details, err := s.details(ctx)
	if err != nil {
		return nil, err
	}
	return s.colorFlow(s.memosFor(ctx).flow.Get(details)), nil
}

// Dashboard returns the summary metrics plus the overview charts in one call.
func (s *ChartService) Dashboard(ctx context.Context) (*Dashboard, error) {
	details, err := s.details(ctx)
	if err != nil {
		return nil, err
	}
	m := s.memosFor(ctx)
	return &Dashboard{
		Summary:     m.summary.Get(details),
		StageCounts: s.colorStageCounts(m.stageCounts.Get(details)),
		Statuses:    s.colorLabelCounts(m.latest.Get(details)),
	}, nil
}

// ChartBundle is every chart for one data set, used for public share and
// profile analytics views where the data is not the acting user's own.
type ChartBundle struct {
	Summary     analytics.Summary `json:"summary"`
	StageCounts []StageCountEntry `json:"stage_counts"`
	Statuses    []StatusEntry     `json:"statuses"`
	Timeline    *TimelineChart    `json:"timeline"`
	Flow        *FlowChart        `json:"flow"`
}

// BundleFor assembles all charts for an arbitrary data set without
// memoization.
func (s *ChartService) BundleFor(details []model.ProcessDetail) *ChartBundle {
	return &ChartBundle{
		Summary:     analytics.Summarize(details),
		StageCounts: s.colorStageCounts(analytics.StageCounts(details)),
		Statuses:    s.colorLabelCounts(analytics.LatestStageDistribution(details)),
		Timeline:    s.buildTimeline(analytics.Timeline(details, s.loc)),
		Flow:        s.colorFlow(analytics.Flow(details)),
	}
}

func (s *ChartService) colorStageCounts(counts []analytics.StageCount) []StageCountEntry {
	out := make([]StageCountEntry, len(counts))
	for i, c := range counts {
		out[i] = StageCountEntry{Name: c.Name, Count: c.Count, Color: s.palette.Color(c.Name)}
	}
	return out
}

func (s *ChartService) colorLabelCounts(counts []analytics.LabelCount) []StatusEntry {
	out := make([]StatusEntry, len(counts))
	for i, c := range counts {
		out[i] = StatusEntry{
			Label: c.Label,
			Count: c.Count,
			Color: s.palette.Color(model.NormalizeStageName(c.Label)),
		}
	}
	return out
}

func (s *ChartService) buildTimeline(points []analytics.TimelinePoint) *TimelineChart {
	chart := &TimelineChart{
		Points:       points,
		Insufficient: len(points) < analytics.MinTimelineDays,
	}
	if len(points) == 0 {
		return chart
	}
	// The last point carries every series: counts are cumulative.
	last := points[len(points)-1].Counts
	for _, name := range model.CanonicalStageOrder() {
		if _, ok := last[name]; ok {
			chart.Series = append(chart.Series, TimelineSeries{Name: name, Color: s.palette.Color(name)})
		}
	}
	var extra []model.StageName
	for name := range last {
		if !name.Known() {
			extra = append(extra, name)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, name := range extra {
		chart.Series = append(chart.Series, TimelineSeries{Name: name, Color: s.palette.Color(name)})
	}
	return chart
}

func (s *ChartService) colorFlow(graph analytics.FlowGraph) *FlowChart {
	chart := &FlowChart{Links: graph.Edges}
	for _, n := range graph.Nodes {
		chart.Nodes = append(chart.Nodes, FlowNodeEntry{
			Name:  n.Name,
			Count: n.Count,
			Color: s.palette.Color(n.Name),
		})
	}
	return chart
}
