package httpx

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	"github.com/offertrack/track-ui-api/internal/service"
)

// Function-field test doubles for the repository ports. Each test wires only
// the methods it exercises; unwired methods panic, which surfaces accidental
// calls immediately.

type stubProcessRepo struct {
	listFn       func(ctx context.Context) ([]*model.Process, error)
	getByIDFn    func(ctx context.Context, id int64) (*model.Process, error)
	getDetailFn  func(ctx context.Context, id int64) (*model.ProcessDetail, error)
	createFn     func(ctx context.Context, req *model.CreateProcessRequest) (*model.Process, error)
	updateFn     func(ctx context.Context, id int64, req *model.UpdateProcessRequest) (*model.Process, error)
	deleteFn     func(ctx context.Context, id int64) error
	setPublicFn  func(ctx context.Context, id int64, public bool) (*model.Process, error)
	getByShareFn func(ctx context.Context, shareID string) (*model.ProcessDetail, error)
}

var _ core.ProcessRepository = (*stubProcessRepo)(nil)

func (s *stubProcessRepo) List(ctx context.Context) ([]*model.Process, error) {
	return s.listFn(ctx)
}

func (s *stubProcessRepo) GetByID(ctx context.Context, id int64) (*model.Process, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubProcessRepo) GetDetail(ctx context.Context, id int64) (*model.ProcessDetail, error) {
	return s.getDetailFn(ctx, id)
}

func (s *stubProcessRepo) Create(ctx context.Context, req *model.CreateProcessRequest) (*model.Process, error) {
	return s.createFn(ctx, req)
}

func (s *stubProcessRepo) Update(ctx context.Context, id int64, req *model.UpdateProcessRequest) (*model.Process, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubProcessRepo) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubProcessRepo) SetPublic(ctx context.Context, id int64, public bool) (*model.Process, error) {
	return s.setPublicFn(ctx, id, public)
}

func (s *stubProcessRepo) GetByShareID(ctx context.Context, shareID string) (*model.ProcessDetail, error) {
	return s.getByShareFn(ctx, shareID)
}

type stubCommentRepo struct {
	listFn         func(ctx context.Context, username string) ([]*model.ProfileComment, error)
	createFn       func(ctx context.Context, username string, req *model.CreateCommentRequest) (*model.ProfileComment, error)
	replyFn        func(ctx context.Context, ref core.CommentRef, req *model.CreateCommentRequest) (*model.ProfileComment, error)
	updateFn       func(ctx context.Context, ref core.CommentRef, req *model.UpdateCommentRequest) (*model.ProfileComment, error)
	deleteFn       func(ctx context.Context, ref core.CommentRef) error
	toggleUpvoteFn func(ctx context.Context, ref core.CommentRef) (*model.ProfileComment, error)
	markAnsweredFn func(ctx context.Context, ref core.CommentRef) (*model.ProfileComment, error)
}

var _ core.CommentRepository = (*stubCommentRepo)(nil)

func (s *stubCommentRepo) List(ctx context.Context, username string) ([]*model.ProfileComment, error) {
	return s.listFn(ctx, username)
}

func (s *stubCommentRepo) Create(ctx context.Context, username string, req *model.CreateCommentRequest) (*model.ProfileComment, error) {
	return s.createFn(ctx, username, req)
}

func (s *stubCommentRepo) Reply(ctx context.Context, ref core.CommentRef, req *model.CreateCommentRequest) (*model.ProfileComment, error) {
	return s.replyFn(ctx, ref, req)
}

func (s *stubCommentRepo) Update(ctx context.Context, ref core.CommentRef, req *model.UpdateCommentRequest) (*model.ProfileComment, error) {
	return s.updateFn(ctx, ref, req)
}

func (s *stubCommentRepo) Delete(ctx context.Context, ref core.CommentRef) error {
	return s.deleteFn(ctx, ref)
}

func (s *stubCommentRepo) ToggleUpvote(ctx context.Context, ref core.CommentRef) (*model.ProfileComment, error) {
	return s.toggleUpvoteFn(ctx, ref)
}

func (s *stubCommentRepo) MarkAnswered(ctx context.Context, ref core.CommentRef) (*model.ProfileComment, error) {
	return s.markAnsweredFn(ctx, ref)
}

type stubNotificationRepo struct {
	listFn        func(ctx context.Context) ([]*model.Notification, error)
	unreadCountFn func(ctx context.Context) (*model.UnreadCount, error)
	markReadFn    func(ctx context.Context, id int64) (*model.Notification, error)
	markAllReadFn func(ctx context.Context) error
}

var _ core.NotificationRepository = (*stubNotificationRepo)(nil)

func (s *stubNotificationRepo) List(ctx context.Context) ([]*model.Notification, error) {
	return s.listFn(ctx)
}

func (s *stubNotificationRepo) UnreadCount(ctx context.Context) (*model.UnreadCount, error) {
	return s.unreadCountFn(ctx)
}

func (s *stubNotificationRepo) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	return s.markReadFn(ctx, id)
}

func (s *stubNotificationRepo) MarkAllRead(ctx context.Context) error {
	return s.markAllReadFn(ctx)
}

type stubFeedbackRepo struct {
	createFn func(ctx context.Context, req *model.CreateFeedbackRequest) (*model.Feedback, error)
	listFn   func(ctx context.Context) ([]*model.Feedback, error)
}

var _ core.FeedbackRepository = (*stubFeedbackRepo)(nil)

func (s *stubFeedbackRepo) Create(ctx context.Context, req *model.CreateFeedbackRequest) (*model.Feedback, error) {
	return s.createFn(ctx, req)
}

func (s *stubFeedbackRepo) List(ctx context.Context) ([]*model.Feedback, error) {
	return s.listFn(ctx)
}

type stubProfileRepo struct {
	profileFn   func(ctx context.Context, username string) (*model.PublicProfile, error)
	analyticsFn func(ctx context.Context, username string) (*model.PublicAnalytics, error)
}

var _ core.ProfileRepository = (*stubProfileRepo)(nil)

func (s *stubProfileRepo) PublicProfile(ctx context.Context, username string) (*model.PublicProfile, error) {
	return s.profileFn(ctx, username)
}

func (s *stubProfileRepo) PublicAnalytics(ctx context.Context, username string) (*model.PublicAnalytics, error) {
	return s.analyticsFn(ctx, username)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newChartService builds a chart service over the given process repository.
func newChartService(repo core.ProcessRepository) *service.ChartService {
	dashboards := service.NewDashboardService(service.DashboardServiceOptions{
		Processes: repo,
		Logger:    testLogger(),
	})
	return service.NewChartService(service.ChartServiceOptions{
		Source:   dashboards,
		Location: time.UTC,
	})
}
