package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
	"github.com/offertrack/track-ui-api/internal/testutil"
)

// stubProfileRepo is a func-field test double for core.ProfileRepository.
type stubProfileRepo struct {
	profileFunc   func(ctx context.Context, username string) (*model.PublicProfile, error)
	analyticsFunc func(ctx context.Context, username string) (*model.PublicAnalytics, error)
}

var _ core.ProfileRepository = (*stubProfileRepo)(nil)

func (s *stubProfileRepo) PublicProfile(ctx context.Context, username string) (*model.PublicProfile, error) {
	if s.profileFunc != nil {
		return s.profileFunc(ctx, username)
	}
	return nil, apperrors.NotFound("profile not found")
}

func (s *stubProfileRepo) PublicAnalytics(ctx context.Context, username string) (*model.PublicAnalytics, error) {
	if s.analyticsFunc != nil {
		return s.analyticsFunc(ctx, username)
	}
	return nil, apperrors.NotFound("profile not found")
}

func newProfileService(repo *stubProfileRepo) *ProfileService {
	return NewProfileService(ProfileServiceOptions{
		Profiles: repo,
		Charts:   NewChartService(ChartServiceOptions{Location: time.UTC}),
	})
}

func TestProfileService_Get(t *testing.T) {
	svc := newProfileService(&stubProfileRepo{
		profileFunc: func(_ context.Context, username string) (*model.PublicProfile, error) {
			return &model.PublicProfile{Username: username, CommentsEnabled: true}, nil
		},
	})

	profile, err := svc.Get(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.True(t, profile.CommentsEnabled)
}

func TestProfileService_Get_RequiresUsername(t *testing.T) {
	svc := newProfileService(&stubProfileRepo{})

	_, err := svc.Get(context.Background(), "  ")

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestProfileService_Get_NotFoundPropagates(t *testing.T) {
	svc := newProfileService(&stubProfileRepo{})

	_, err := svc.Get(context.Background(), "ghost")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProfileService_Analytics_AssemblesCharts(t *testing.T) {
	svc := newProfileService(&stubProfileRepo{
		analyticsFunc: func(_ context.Context, username string) (*model.PublicAnalytics, error) {
			return &model.PublicAnalytics{
				Username: username,
				Details: []model.ProcessDetail{
					*testutil.NewProcess(1).
						WithStage(model.StageApplied, testutil.Day(1)).
						WithStage(model.StageReject, testutil.Day(4)).
						WithStatus(model.ProcessStatusRejected).
						BuildDetail(),
				},
				Stats: model.AnalyticsStats{TotalPublicProcesses: 1},
			}, nil
		},
	})

	analytics, err := svc.Analytics(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", analytics.Username)
	assert.Equal(t, 1, analytics.Stats.TotalPublicProcesses)
	require.NotNil(t, analytics.Charts)
	assert.Equal(t, 1, analytics.Charts.Summary.TotalProcesses)
	assert.Len(t, analytics.Charts.Flow.Links, 1)
}
