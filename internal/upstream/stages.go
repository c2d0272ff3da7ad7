package upstream

import (
	"context"
	"fmt"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// StageClient implements core.StageRepository against the tracker API.
type StageClient struct {
	c *Client
}

// NewStageClient creates a StageClient on the shared client.
func NewStageClient(c *Client) *StageClient {
	return &StageClient{c: c}
}

var _ core.StageRepository = (*StageClient)(nil)

// ListByProcess returns a process's stages.
func (s *StageClient) ListByProcess(ctx context.Context, processID int64) ([]*model.Stage, error) {
	var wires []wireStage
	if err := s.c.get(ctx, fmt.Sprintf("/api/stages/process/%d", processID), &wires); err != nil {
		return nil, fmt.Errorf("list stages for process %d: %w", processID, err)
	}
	out := make([]*model.Stage, 0, len(wires))
	for i := range wires {
		out = append(out, wires[i].toModel())
	}
	return out, nil
}

// Create adds a stage to the process named in the request.
func (s *StageClient) Create(ctx context.Context, req *model.CreateStageRequest) (*model.Stage, error) {
	var wire wireStage
	if err := s.c.post(ctx, "/api/stages/", req, &wire); err != nil {
		return nil, fmt.Errorf("create stage: %w", err)
	}
	return wire.toModel(), nil
}

// Update applies a partial update to a stage.
func (s *StageClient) Update(ctx context.Context, id int64, req *model.UpdateStageRequest) (*model.Stage, error) {
	var wire wireStage
	if err := s.c.patch(ctx, fmt.Sprintf("/api/stages/%d", id), req, &wire); err != nil {
		return nil, fmt.Errorf("update stage %d: %w", id, err)
	}
	return wire.toModel(), nil
}

// Delete removes a stage.
func (s *StageClient) Delete(ctx context.Context, id int64) error {
	if err := s.c.delete(ctx, fmt.Sprintf("/api/stages/%d", id), nil); err != nil {
		return fmt.Errorf("delete stage %d: %w", id, err)
	}
	return nil
}
