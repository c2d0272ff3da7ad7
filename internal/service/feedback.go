package service

import (
	"context"
	"fmt"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/auth"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

// FeedbackServiceOptions groups dependencies for FeedbackService.
type FeedbackServiceOptions struct {
	Repo core.FeedbackRepository
}

// FeedbackService accepts product feedback and lists it for admins.
type FeedbackService struct {
	feedback core.FeedbackRepository
}

// NewFeedbackService constructs a new FeedbackService.
func NewFeedbackService(opts FeedbackServiceOptions) *FeedbackService {
	return &FeedbackService{feedback: opts.Repo}
}

// Submit validates and records a feedback message. Works for anonymous
// visitors; authenticated submissions are attributed upstream.
func (s *FeedbackService) Submit(ctx context.Context, req *model.CreateFeedbackRequest) (*model.Feedback, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	created, err := s.feedback.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("submit feedback: %w", err)
	}
	return created, nil
}

// List returns all feedback, newest first. Admin only.
func (s *FeedbackService) List(ctx context.Context) ([]*model.Feedback, error) {
	sess, ok := auth.SessionFromContext(ctx)
	if !ok {
		return nil, apperrors.Unauthorized("authentication required")
	}
	if !sess.IsAdmin() {
		return nil, apperrors.Forbidden("admin role required")
	}

	list, err := s.feedback.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return list, nil
}
