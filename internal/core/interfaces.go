package core

import (
	"context"

	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and the data layer.
// The upstream tracker API client provides the primary implementations; caching
// decorators wrap them. Service implementations should depend on these interfaces,
// not concrete implementations.

// ProcessRepository defines the interface for application process data operations.
// Operations act on behalf of the user carried in the context.
type ProcessRepository interface {
	// List returns all of the acting user's processes with derived status.
	List(ctx context.Context) ([]*model.Process, error)
	GetByID(ctx context.Context, id int64) (*model.Process, error)
	// GetDetail returns a process together with its stages.
	GetDetail(ctx context.Context, id int64) (*model.ProcessDetail, error)
	Create(ctx context.Context, req *model.CreateProcessRequest) (*model.Process, error)
	Update(ctx context.Context, id int64, req *model.UpdateProcessRequest) (*model.Process, error)
	Delete(ctx context.Context, id int64) error

	// SetPublic toggles sharing for a process. Enabling assigns a share id
	// when the process does not have one yet; the returned process carries it.
	SetPublic(ctx context.Context, id int64, public bool) (*model.Process, error)

	// GetByShareID resolves a shared process by its public share id.
	// It requires no authenticated user.
	GetByShareID(ctx context.Context, shareID string) (*model.ProcessDetail, error)
}

// StageRepository defines the interface for stage data operations.
type StageRepository interface {
	ListByProcess(ctx context.Context, processID int64) ([]*model.Stage, error)
	Create(ctx context.Context, req *model.CreateStageRequest) (*model.Stage, error)
	Update(ctx context.Context, id int64, req *model.UpdateStageRequest) (*model.Stage, error)
	Delete(ctx context.Context, id int64) error
}

// ProfileRepository defines the interface for public profile data operations.
// Neither operation requires an authenticated user.
type ProfileRepository interface {
	// PublicProfile returns the public view of a profile by username.
	PublicProfile(ctx context.Context, username string) (*model.PublicProfile, error)
	// PublicAnalytics returns a profile's public processes with stage details
	// for chart assembly.
	PublicAnalytics(ctx context.Context, username string) (*model.PublicAnalytics, error)
}

// CommentRef addresses a comment within a profile. Comment operations are
// scoped to the profile they were left on.
type CommentRef struct {
	Username  string
	CommentID int64
}

// CommentRepository defines the interface for profile comment data operations.
type CommentRepository interface {
	// List returns a profile's threaded top-level comments, most upvoted first.
	List(ctx context.Context, username string) ([]*model.ProfileComment, error)
	Create(ctx context.Context, username string, req *model.CreateCommentRequest) (*model.ProfileComment, error)
	Reply(ctx context.Context, ref CommentRef, req *model.CreateCommentRequest) (*model.ProfileComment, error)
	Update(ctx context.Context, ref CommentRef, req *model.UpdateCommentRequest) (*model.ProfileComment, error)
	Delete(ctx context.Context, ref CommentRef) error
	// ToggleUpvote adds the acting user's upvote, or removes it when already present.
	ToggleUpvote(ctx context.Context, ref CommentRef) (*model.ProfileComment, error)
	// MarkAnswered flags a question comment as answered by the profile owner.
	MarkAnswered(ctx context.Context, ref CommentRef) (*model.ProfileComment, error)
}

// NotificationRepository defines the interface for notification data operations.
type NotificationRepository interface {
	// List returns the acting user's notifications, newest first.
	List(ctx context.Context) ([]*model.Notification, error)
	UnreadCount(ctx context.Context) (*model.UnreadCount, error)
	MarkRead(ctx context.Context, id int64) (*model.Notification, error)
	MarkAllRead(ctx context.Context) error
}

// FeedbackRepository defines the interface for feedback data operations.
type FeedbackRepository interface {
	Create(ctx context.Context, req *model.CreateFeedbackRequest) (*model.Feedback, error)
	// List returns all feedback, newest first. Admin only.
	List(ctx context.Context) ([]*model.Feedback, error)
}

// NotificationDispatcher forwards notification events to configured outbound sinks.
type NotificationDispatcher interface {
	// Dispatch sends a notification to all configured webhook sinks.
	// Individual sink failures are logged; an error is returned only when
	// every sink fails.
	Dispatch(ctx context.Context, notification *model.Notification) error
}
