package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Profiles core.ProfileRepository
	Charts   *ChartService
}

// ProfileService serves public profile pages and their analytics. Neither
// operation requires an authenticated user.
type ProfileService struct {
	profiles core.ProfileRepository
	charts   *ChartService
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	return &ProfileService{profiles: opts.Profiles, charts: opts.Charts}
}

// ProfileAnalytics is the public analytics view: the upstream stats plus
// charts assembled over the profile's public processes.
type ProfileAnalytics struct {
	Username string                `json:"username"`
	Stats    model.AnalyticsStats  `json:"stats"`
	Charts   *ChartBundle          `json:"charts"`
	Details  []model.ProcessDetail `json:"processes"`
}

// Get returns the public view of a profile.
func (s *ProfileService) Get(ctx context.Context, username string) (*model.PublicProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.Validation("username is required")
	}
	profile, err := s.profiles.PublicProfile(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("public profile %s: %w", username, err)
	}
	return profile, nil
}

// Analytics returns a profile's public analytics with chart payloads.
func (s *ProfileService) Analytics(ctx context.Context, username string) (*ProfileAnalytics, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.Validation("username is required")
	}
	analytics, err := s.profiles.PublicAnalytics(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("public analytics %s: %w", username, err)
	}

	return &ProfileAnalytics{
		Username: analytics.Username,
		Stats:    analytics.Stats,
		Charts:   s.charts.BundleFor(analytics.Details),
		Details:  analytics.Details,
	}, nil
}
