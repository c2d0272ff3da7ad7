package upstream

import (
	"context"
	"fmt"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// FeedbackClient implements core.FeedbackRepository against the tracker API.
type FeedbackClient struct {
	c *Client
}

// NewFeedbackClient creates a FeedbackClient on the shared client.
func NewFeedbackClient(c *Client) *FeedbackClient {
	return &FeedbackClient{c: c}
}

var _ core.FeedbackRepository = (*FeedbackClient)(nil)

// Create submits feedback, authenticated or anonymous.
func (f *FeedbackClient) Create(ctx context.Context, req *model.CreateFeedbackRequest) (*model.Feedback, error) {
	var wire wireFeedback
	if err := f.c.post(ctx, "/api/feedback/", req, &wire); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return wire.toModel(), nil
}

// List returns all feedback, newest first.
func (f *FeedbackClient) List(ctx context.Context) ([]*model.Feedback, error) {
	var wires []wireFeedback
	if err := f.c.get(ctx, "/api/feedback/", &wires); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	out := make([]*model.Feedback, 0, len(wires))
	for i := range wires {
		out = append(out, wires[i].toModel())
	}
	return out, nil
}
