package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

// stubCommentRepo is a func-field test double for core.CommentRepository.
type stubCommentRepo struct {
	listFunc         func(ctx context.Context, username string) ([]*model.ProfileComment, error)
	createFunc       func(ctx context.Context, username string, req *model.CreateCommentRequest) (*model.ProfileComment, error)
	replyFunc        func(ctx context.Context, ref core.CommentRef, req *model.CreateCommentRequest) (*model.ProfileComment, error)
	updateFunc       func(ctx context.Context, ref core.CommentRef, req *model.UpdateCommentRequest) (*model.ProfileComment, error)
	deleteFunc       func(ctx context.Context, ref core.CommentRef) error
	toggleUpvoteFunc func(ctx context.Context, ref core.CommentRef) (*model.ProfileComment, error)
	markAnsweredFunc func(ctx context.Context, ref core.CommentRef) (*model.ProfileComment, error)
}

var _ core.CommentRepository = (*stubCommentRepo)(nil)

func (s *stubCommentRepo) List(ctx context.Context, username string) ([]*model.ProfileComment, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, username)
	}
	return nil, nil
}

func (s *stubCommentRepo) Create(ctx context.Context, username string, req *model.CreateCommentRequest) (*model.ProfileComment, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, username, req)
	}
	return &model.ProfileComment{ID: 1, ProfileUsername: username, Content: req.Content}, nil
}

func (s *stubCommentRepo) Reply(ctx context.Context, ref core.CommentRef, req *model.CreateCommentRequest) (*model.ProfileComment, error) {
	if s.replyFunc != nil {
		return s.replyFunc(ctx, ref, req)
	}
	return &model.ProfileComment{ID: 2, ProfileUsername: ref.Username, ParentID: &ref.CommentID, Content: req.Content}, nil
}

func (s *stubCommentRepo) Update(ctx context.Context, ref core.CommentRef, req *model.UpdateCommentRequest) (*model.ProfileComment, error) {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, ref, req)
	}
	return &model.ProfileComment{ID: ref.CommentID, Content: req.Content}, nil
}

func (s *stubCommentRepo) Delete(ctx context.Context, ref core.CommentRef) error {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, ref)
	}
	return nil
}

func (s *stubCommentRepo) ToggleUpvote(ctx context.Context, ref core.CommentRef) (*model.ProfileComment, error) {
	if s.toggleUpvoteFunc != nil {
		return s.toggleUpvoteFunc(ctx, ref)
	}
	return &model.ProfileComment{ID: ref.CommentID}, nil
}

func (s *stubCommentRepo) MarkAnswered(ctx context.Context, ref core.CommentRef) (*model.ProfileComment, error) {
	if s.markAnsweredFunc != nil {
		return s.markAnsweredFunc(ctx, ref)
	}
	return &model.ProfileComment{ID: ref.CommentID, IsAnswered: true}, nil
}

// recordingDispatcher captures dispatched notifications.
type recordingDispatcher struct {
	events []*model.Notification
	err    error
}

func (r *recordingDispatcher) Dispatch(_ context.Context, n *model.Notification) error {
	r.events = append(r.events, n)
	return r.err
}

func TestCommentService_Create_DispatchesEvent(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	svc := NewCommentService(CommentServiceOptions{
		Comments:   &stubCommentRepo{},
		Dispatcher: dispatcher,
	})

	created, err := svc.Create(context.Background(), "alice", &model.CreateCommentRequest{Content: "nice run!"})

	require.NoError(t, err)
	assert.Equal(t, "nice run!", created.Content)
	require.Len(t, dispatcher.events, 1)
	event := dispatcher.events[0]
	assert.Equal(t, model.NotificationComment, event.Type)
	require.NotNil(t, event.ProfileUsername)
	assert.Equal(t, "alice", *event.ProfileUsername)
}

func TestCommentService_Create_ValidatesContent(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	svc := NewCommentService(CommentServiceOptions{Comments: &stubCommentRepo{}, Dispatcher: dispatcher})

	_, err := svc.Create(context.Background(), "alice", &model.CreateCommentRequest{Content: "   "})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, dispatcher.events)
}

func TestCommentService_Create_DispatchFailureDoesNotFail(t *testing.T) {
	dispatcher := &recordingDispatcher{err: errors.New("sink down")}
	svc := NewCommentService(CommentServiceOptions{Comments: &stubCommentRepo{}, Dispatcher: dispatcher})

	created, err := svc.Create(context.Background(), "alice", &model.CreateCommentRequest{Content: "hello"})

	require.NoError(t, err, "dispatch problems never surface to the commenter")
	assert.NotNil(t, created)
}

func TestCommentService_Reply_DispatchesReplyEvent(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	svc := NewCommentService(CommentServiceOptions{Comments: &stubCommentRepo{}, Dispatcher: dispatcher})

	ref := core.CommentRef{Username: "alice", CommentID: 7}
	_, err := svc.Reply(context.Background(), ref, &model.CreateCommentRequest{Content: "thanks!"})

	require.NoError(t, err)
	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, model.NotificationReply, dispatcher.events[0].Type)
}

func TestCommentService_ToggleUpvote_DispatchesOnlyWhenUpvoted(t *testing.T) {
	upvoted := false
	repo := &stubCommentRepo{
		toggleUpvoteFunc: func(_ context.Context, ref core.CommentRef) (*model.ProfileComment, error) {
			upvoted = !upvoted
			return &model.ProfileComment{ID: ref.CommentID, UserHasUpvoted: upvoted, Upvotes: map[bool]int{true: 1, false: 0}[upvoted]}, nil
		},
	}
	dispatcher := &recordingDispatcher{}
	svc := NewCommentService(CommentServiceOptions{Comments: repo, Dispatcher: dispatcher})

	ref := core.CommentRef{Username: "alice", CommentID: 7}

	first, err := svc.ToggleUpvote(context.Background(), ref)
	require.NoError(t, err)
	assert.True(t, first.UserHasUpvoted)
	assert.Len(t, dispatcher.events, 1)

	second, err := svc.ToggleUpvote(context.Background(), ref)
	require.NoError(t, err)
	assert.False(t, second.UserHasUpvoted)
	assert.Len(t, dispatcher.events, 1, "removing an upvote dispatches nothing")
}

func TestCommentService_MarkAnswered_DispatchesAnswerEvent(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	svc := NewCommentService(CommentServiceOptions{Comments: &stubCommentRepo{}, Dispatcher: dispatcher})

	answered, err := svc.MarkAnswered(context.Background(), core.CommentRef{Username: "alice", CommentID: 7})

	require.NoError(t, err)
	assert.True(t, answered.IsAnswered)
	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, model.NotificationAnswer, dispatcher.events[0].Type)
}

func TestCommentService_NilDispatcherIsFine(t *testing.T) {
	svc := NewCommentService(CommentServiceOptions{Comments: &stubCommentRepo{}})

	_, err := svc.Create(context.Background(), "alice", &model.CreateCommentRequest{Content: "hi"})

	require.NoError(t, err)
}

func TestCommentService_List_RequiresUsername(t *testing.T) {
	svc := NewCommentService(CommentServiceOptions{Comments: &stubCommentRepo{}})

	_, err := svc.List(context.Background(), "  ")

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
