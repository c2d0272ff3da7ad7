package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// ProfileClient implements core.ProfileRepository against the tracker API.
type ProfileClient struct {
	c *Client
}

// NewProfileClient creates a ProfileClient on the shared client.
func NewProfileClient(c *Client) *ProfileClient {
	return &ProfileClient{c: c}
}

var _ core.ProfileRepository = (*ProfileClient)(nil)

// PublicProfile returns the public view of a profile.
func (p *ProfileClient) PublicProfile(ctx context.Context, username string) (*model.PublicProfile, error) {
	var wire wirePublicProfile
	path := "/api/profiles/" + url.PathEscape(username)
	if err := p.c.get(ctx, path, &wire); err != nil {
		return nil, fmt.Errorf("get public profile %q: %w", username, err)
	}
	return wire.toModel(), nil
}

// PublicAnalytics returns a profile's public processes and stats for charts.
func (p *ProfileClient) PublicAnalytics(ctx context.Context, username string) (*model.PublicAnalytics, error) {
	var wire wirePublicAnalytics
	path := "/api/analytics/" + url.PathEscape(username) + "/public"
	if err := p.c.get(ctx, path, &wire); err != nil {
		return nil, fmt.Errorf("get public analytics %q: %w", username, err)
	}
	return wire.toModel(), nil
}
