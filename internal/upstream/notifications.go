package upstream

import (
	"context"
	"fmt"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// NotificationClient implements core.NotificationRepository against the tracker API.
type NotificationClient struct {
	c *Client
}

// NewNotificationClient creates a NotificationClient on the shared client.
func NewNotificationClient(c *Client) *NotificationClient {
	return &NotificationClient{c: c}
}

var _ core.NotificationRepository = (*NotificationClient)(nil)

// List returns the acting user's notifications, newest first.
func (n *NotificationClient) List(ctx context.Context) ([]*model.Notification, error) {
	var wires []wireNotification
	if err := n.c.get(ctx, "/api/notifications", &wires); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	out := make([]*model.Notification, 0, len(wires))
	for i := range wires {
		out = append(out, wires[i].toModel())
	}
	return out, nil
}

type wireUnreadCount struct {
	UnreadCount int `json:"unread_count"`
}

// UnreadCount returns the number of unread notifications.
func (n *NotificationClient) UnreadCount(ctx context.Context) (*model.UnreadCount, error) {
	var wire wireUnreadCount
	if err := n.c.get(ctx, "/api/notifications/unread-count", &wire); err != nil {
		return nil, fmt.Errorf("get unread count: %w", err)
	}
	return &model.UnreadCount{Count: wire.UnreadCount}, nil
}

// MarkRead marks one notification as read.
func (n *NotificationClient) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	var wire wireNotification
	if err := n.c.patch(ctx, fmt.Sprintf("/api/notifications/%d/read", id), nil, &wire); err != nil {
		return nil, fmt.Errorf("mark notification %d read: %w", id, err)
	}
	return wire.toModel(), nil
}

// MarkAllRead marks every unread notification as read.
func (n *NotificationClient) MarkAllRead(ctx context.Context) error {
	if err := n.c.patch(ctx, "/api/notifications/read-all", nil, nil); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
