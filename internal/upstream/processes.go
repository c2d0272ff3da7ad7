package upstream

import (
	"context"
	"fmt"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// ProcessClient implements core.ProcessRepository against the tracker API.
type ProcessClient struct {
	c *Client
}

// NewProcessClient creates a ProcessClient on the shared client.
func NewProcessClient(c *Client) *ProcessClient {
	return &ProcessClient{c: c}
}

var _ core.ProcessRepository = (*ProcessClient)(nil)

// List returns all of the acting user's processes.
func (p *ProcessClient) List(ctx context.Context) ([]*model.Process, error) {
	var wires []wireProcess
	if err := p.c.get(ctx, "/api/processes/", &wires); err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	out := make([]*model.Process, 0, len(wires))
	for i := range wires {
		out = append(out, wires[i].toModel())
	}
	return out, nil
}

// GetByID returns one process without its stages.
func (p *ProcessClient) GetByID(ctx context.Context, id int64) (*model.Process, error) {
	var wire wireProcess
	if err := p.c.get(ctx, fmt.Sprintf("/api/processes/%d", id), &wire); err != nil {
		return nil, fmt.Errorf("get process %d: %w", id, err)
	}
	return wire.toModel(), nil
}

// GetDetail returns one process with its stages.
func (p *ProcessClient) GetDetail(ctx context.Context, id int64) (*model.ProcessDetail, error) {
	var wire wireProcessDetail
	if err := p.c.get(ctx, fmt.Sprintf("/api/processes/%d/detail", id), &wire); err != nil {
		return nil, fmt.Errorf("get process detail %d: %w", id, err)
	}
	return wire.toModel(), nil
}

// Create creates a process. The upstream rejects duplicates on
// company+position with a validation error.
func (p *ProcessClient) Create(ctx context.Context, req *model.CreateProcessRequest) (*model.Process, error) {
	var wire wireProcess
	if err := p.c.post(ctx, "/api/processes/", req, &wire); err != nil {
		return nil, fmt.Errorf("create process: %w", err)
	}
	return wire.toModel(), nil
}

// Update applies a partial update to a process.
func (p *ProcessClient) Update(ctx context.Context, id int64, req *model.UpdateProcessRequest) (*model.Process, error) {
	var wire wireProcess
	if err := p.c.patch(ctx, fmt.Sprintf("/api/processes/%d", id), req, &wire); err != nil {
		return nil, fmt.Errorf("update process %d: %w", id, err)
	}
	return wire.toModel(), nil
}

// Delete removes a process and its stages.
func (p *ProcessClient) Delete(ctx context.Context, id int64) error {
	if err := p.c.delete(ctx, fmt.Sprintf("/api/processes/%d", id), nil); err != nil {
		return fmt.Errorf("delete process %d: %w", id, err)
	}
	return nil
}

type shareToggleBody struct {
	IsPublic bool `json:"is_public"`
}

// SetPublic toggles public sharing for a process.
func (p *ProcessClient) SetPublic(ctx context.Context, id int64, public bool) (*model.Process, error) {
	var wire wireProcess
	body := shareToggleBody{IsPublic: public}
	if err := p.c.patch(ctx, fmt.Sprintf("/api/processes/%d/share", id), body, &wire); err != nil {
		return nil, fmt.Errorf("toggle sharing for process %d: %w", id, err)
	}
	return wire.toModel(), nil
}

// GetByShareID resolves a publicly shared process.
func (p *ProcessClient) GetByShareID(ctx context.Context, shareID string) (*model.ProcessDetail, error) {
	var wire wireProcessDetail
	if err := p.c.get(ctx, "/api/processes/share/"+shareID, &wire); err != nil {
		return nil, fmt.Errorf("get shared process %s: %w", shareID, err)
	}
	return wire.toModel(), nil
}
