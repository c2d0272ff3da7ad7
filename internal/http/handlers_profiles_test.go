package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
	"github.com/offertrack/track-ui-api/internal/service"
	"github.com/offertrack/track-ui-api/internal/testutil"
)

func newProfileHandlers(repo *stubProfileRepo) *ProfileHandlers {
	return &ProfileHandlers{Svc: service.NewProfileService(service.ProfileServiceOptions{
		Profiles: repo,
		Charts:   newChartService(&stubProcessRepo{}),
	})}
}

func newCommentHandlers(repo *stubCommentRepo) *CommentHandlers {
	return &CommentHandlers{Svc: service.NewCommentService(service.CommentServiceOptions{
		Comments: repo,
		Logger:   testLogger(),
	})}
}

func TestProfileHandlers_Get(t *testing.T) {
	repo := &stubProfileRepo{
		profileFn: func(_ context.Context, username string) (*model.PublicProfile, error) {
			require.Equal(t, "bob", username)
			return &model.PublicProfile{Username: "bob", CommentsEnabled: true}, nil
		},
	}
	handlers := newProfileHandlers(repo)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/profiles/bob", nil)
	r.SetPathValue("username", "bob")

	handlers.Get(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response model.PublicProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "bob", response.Username)
}

func TestProfileHandlers_Get_NotFound(t *testing.T) {
	repo := &stubProfileRepo{
		profileFn: func(_ context.Context, username string) (*model.PublicProfile, error) {
			return nil, apperrors.NotFoundf("profile %q not found", username)
		},
	}
	handlers := newProfileHandlers(repo)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/profiles/ghost", nil)
	r.SetPathValue("username", "ghost")

	handlers.Get(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileHandlers_Analytics(t *testing.T) {
	repo := &stubProfileRepo{
		analyticsFn: func(_ context.Context, username string) (*model.PublicAnalytics, error) {
			detail := testutil.NewProcess(1).
				Shared("s1").
				WithStage(model.StageApplied, testutil.Day(1)).
				BuildDetail()
			return &model.PublicAnalytics{
				Username: username,
				Details:  []model.ProcessDetail{*detail},
				Stats:    model.AnalyticsStats{TotalPublicProcesses: 1},
			}, nil
		},
	}
	handlers := newProfileHandlers(repo)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/profiles/bob/analytics", nil)
	r.SetPathValue("username", "bob")

	handlers.Analytics(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response service.ProfileAnalytics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "bob", response.Username)
	require.NotNil(t, response.Charts)
	assert.NotEmpty(t, response.Charts.StageCounts)
}

func TestCommentHandlers_List(t *testing.T) {
	repo := &stubCommentRepo{
		listFn: func(_ context.Context, username string) ([]*model.ProfileComment, error) {
			return []*model.ProfileComment{{ID: 1, Content: "nice run"}}, nil
		},
	}
	handlers := newCommentHandlers(repo)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/profiles/bob/comments", nil)
	r.SetPathValue("username", "bob")

	handlers.List(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []model.ProfileComment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "nice run", response[0].Content)
}

func TestCommentHandlers_Create(t *testing.T) {
	repo := &stubCommentRepo{
		createFn: func(_ context.Context, username string, req *model.CreateCommentRequest) (*model.ProfileComment, error) {
			require.Equal(t, "bob", username)
			return &model.ProfileComment{ID: 5, Content: req.Content, ProfileUsername: username}, nil
		},
	}
	handlers := newCommentHandlers(repo)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/profiles/bob/comments",
		strings.NewReader(`{"content":"congrats on the offer"}`))
	r.SetPathValue("username", "bob")

	handlers.Create(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response model.ProfileComment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(5), response.ID)
}

func TestCommentHandlers_Create_EmptyContent(t *testing.T) {
	handlers := newCommentHandlers(&stubCommentRepo{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/profiles/bob/comments", strings.NewReader(`{"content":"  "}`))
	r.SetPathValue("username", "bob")

	handlers.Create(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentHandlers_Reply(t *testing.T) {
	repo := &stubCommentRepo{
		replyFn: func(_ context.Context, ref core.CommentRef, req *model.CreateCommentRequest) (*model.ProfileComment, error) {
			require.Equal(t, core.CommentRef{Username: "bob", CommentID: 5}, ref)
			return &model.ProfileComment{ID: 6, ParentID: testutil.Int64Ptr(5), Content: req.Content}, nil
		},
	}
	handlers := newCommentHandlers(repo)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/profiles/bob/comments/5/replies",
		strings.NewReader(`{"content":"thanks!"}`))
	r.SetPathValue("username", "bob")
	r.SetPathValue("comment_id", "5")

	handlers.Reply(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCommentHandlers_Reply_BadCommentID(t *testing.T) {
	handlers := newCommentHandlers(&stubCommentRepo{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/profiles/bob/comments/zero/replies",
		strings.NewReader(`{"content":"thanks!"}`))
	r.SetPathValue("username", "bob")
	r.SetPathValue("comment_id", "zero")

	handlers.Reply(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentHandlers_ToggleUpvote(t *testing.T) {
	repo := &stubCommentRepo{
		toggleUpvoteFn: func(_ context.Context, ref core.CommentRef) (*model.ProfileComment, error) {
			return &model.ProfileComment{ID: ref.CommentID, Upvotes: 3, UserHasUpvoted: true}, nil
		},
	}
	handlers := newCommentHandlers(repo)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/profiles/bob/comments/5/upvote", nil)
	r.SetPathValue("username", "bob")
	r.SetPathValue("comment_id", "5")

	handlers.ToggleUpvote(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response model.ProfileComment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.UserHasUpvoted)
	assert.Equal(t, 3, response.Upvotes)
}

func TestCommentHandlers_MarkAnswered(t *testing.T) {
	repo := &stubCommentRepo{
		markAnsweredFn: func(_ context.Context, ref core.CommentRef) (*model.ProfileComment, error) {
			return &model.ProfileComment{ID: ref.CommentID, IsQuestion: true, IsAnswered: true}, nil
		},
	}
	handlers := newCommentHandlers(repo)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/profiles/bob/comments/5/answer", nil)
	r.SetPathValue("username", "bob")
	r.SetPathValue("comment_id", "5")

	handlers.MarkAnswered(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCommentHandlers_Delete(t *testing.T) {
	deleted := false
	repo := &stubCommentRepo{
		deleteFn: func(_ context.Context, ref core.CommentRef) error {
			deleted = true
			return nil
		},
	}
	handlers := newCommentHandlers(repo)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/profiles/bob/comments/5", nil)
	r.SetPathValue("username", "bob")
	r.SetPathValue("comment_id", "5")

	handlers.Delete(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, deleted)
}
