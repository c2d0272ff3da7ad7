package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

// CommentServiceOptions groups dependencies for CommentService.
type CommentServiceOptions struct {
	Comments core.CommentRepository
	// Dispatcher receives an event for every comment interaction.
	// Optional; nil disables outbound dispatch.
	Dispatcher core.NotificationDispatcher
	Logger     *slog.Logger
}

// CommentService orchestrates profile comments. Successful interactions are
// forwarded to the notification dispatcher; dispatch failures are logged and
// never fail the interaction itself.
type CommentService struct {
	comments   core.CommentRepository
	dispatcher core.NotificationDispatcher
	logger     *slog.Logger
}

// NewCommentService constructs a new CommentService.
func NewCommentService(opts CommentServiceOptions) *CommentService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentService{comments: opts.Comments, dispatcher: opts.Dispatcher, logger: logger}
}

// List returns a profile's threaded comments, most upvoted first.
func (s *CommentService) List(ctx context.Context, username string) ([]*model.ProfileComment, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.Validation("username is required")
	}
	comments, err := s.comments.List(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list comments for %s: %w", username, err)
	}
	return comments, nil
}

// Create posts a top-level comment on a profile.
func (s *CommentService) Create(ctx context.Context, username string, req *model.CreateCommentRequest) (*model.ProfileComment, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.Validation("username is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	created, err := s.comments.Create(ctx, username, req)
	if err != nil {
		return nil, fmt.Errorf("create comment on %s: %w", username, err)
	}
	s.dispatch(ctx, model.NotificationComment, created)
	return created, nil
}

// Reply posts a nested reply under an existing comment.
func (s *CommentService) Reply(ctx context.Context, ref core.CommentRef, req *model.CreateCommentRequest) (*model.ProfileComment, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	created, err := s.comments.Reply(ctx, ref, req)
	if err != nil {
		return nil, fmt.Errorf("reply to comment %d: %w", ref.CommentID, err)
	}
	s.dispatch(ctx, model.NotificationReply, created)
	return created, nil
}

// Update edits a comment's content. Only the author may edit; the upstream
// API enforces ownership.
func (s *CommentService) Update(ctx context.Context, ref core.CommentRef, req *model.UpdateCommentRequest) (*model.ProfileComment, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	updated, err := s.comments.Update(ctx, ref, req)
	if err != nil {
		return nil, fmt.Errorf("update comment %d: %w", ref.CommentID, err)
	}
	return updated, nil
}

// Delete removes a comment and its replies.
func (s *CommentService) Delete(ctx context.Context, ref core.CommentRef) error {
	if err := s.comments.Delete(ctx, ref); err != nil {
		return fmt.Errorf("delete comment %d: %w", ref.CommentID, err)
	}
	return nil
}

// ToggleUpvote adds or removes the acting user's upvote. An event is
// dispatched only when the toggle lands on the upvoted state.
func (s *CommentService) ToggleUpvote(ctx context.Context, ref core.CommentRef) (*model.ProfileComment, error) {
	toggled, err := s.comments.ToggleUpvote(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("toggle upvote on comment %d: %w", ref.CommentID, err)
	}
	if toggled.UserHasUpvoted {
		s.dispatch(ctx, model.NotificationUpvote, toggled)
	}
	return toggled, nil
}

// MarkAnswered flags a question as answered by the profile owner.
func (s *CommentService) MarkAnswered(ctx context.Context, ref core.CommentRef) (*model.ProfileComment, error) {
	answered, err := s.comments.MarkAnswered(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("mark comment %d answered: %w", ref.CommentID, err)
	}
	s.dispatch(ctx, model.NotificationAnswer, answered)
	return answered, nil
}

func (s *CommentService) dispatch(ctx context.Context, typ model.NotificationType, c *model.ProfileComment) {
	if s.dispatcher == nil || c == nil {
		return
	}
	n := &model.Notification{
		Type:              typ,
		CommentID:         &c.ID,
		CommentContent:    &c.Content,
		AuthorUsername:    c.AuthorUsername,
		AuthorDisplayName: c.AuthorDisplayName,
		ProfileUsername:   &c.ProfileUsername,
		CreatedAt:         c.UpdatedAt,
	}
	if err := s.dispatcher.Dispatch(ctx, n); err != nil {
		s.logger.WarnContext(ctx, "notification dispatch failed",
			"type", typ, "comment_id", c.ID, "error", err)
	}
}
