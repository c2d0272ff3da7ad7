package service

import (
	"context"
	"fmt"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// NotificationServiceOptions groups dependencies for NotificationService.
type NotificationServiceOptions struct {
	Repo core.NotificationRepository
}

// NotificationService surfaces the acting user's notification inbox.
type NotificationService struct {
	notifications core.NotificationRepository
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(opts NotificationServiceOptions) *NotificationService {
	return &NotificationService{notifications: opts.Repo}
}

// List returns the acting user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context) ([]*model.Notification, error) {
	list, err := s.notifications.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

// UnreadCount returns how many notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context) (*model.UnreadCount, error) {
	count, err := s.notifications.UnreadCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("unread count: %w", err)
	}
	return count, nil
}

// MarkRead marks one notification as read and returns its updated state.
func (s *NotificationService) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	updated, err := s.notifications.MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mark notification %d read: %w", id, err)
	}
	return updated, nil
}

// MarkAllRead marks every notification as read.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	if err := s.notifications.MarkAllRead(ctx); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
