package httpx

import (
	"log/slog"
	"net/http"

	"github.com/offertrack/track-ui-api/internal/observability/statsd"
	"github.com/offertrack/track-ui-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Processes     *service.ProcessService
	Stages        *service.StageService
	Charts        *service.ChartService
	Bulk          *service.BulkService
	Share         *service.ShareService
	Profiles      *service.ProfileService
	Comments      *service.CommentService
	Notifications *service.NotificationService
	Feedback      *service.FeedbackService
	Auth          AuthServiceInterface
	CookieDomain  string
	Metrics       statsd.Sink  // Optional: nil disables metric emission
	Logger        *slog.Logger // Logger for request and panic logging (optional)

	// CompressionEnabled turns on gzip encoding of responses.
	CompressionEnabled bool
	// CompressionLevel is the gzip level used when compression is enabled.
	CompressionLevel int
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	processHandlers := &ProcessHandlers{Svc: services.Processes, Bulk: services.Bulk, Share: services.Share}
	stageHandlers := &StageHandlers{Svc: services.Stages}
	chartHandlers := &ChartHandlers{Svc: services.Charts}
	shareHandlers := &ShareHandlers{Svc: services.Share}
	profileHandlers := &ProfileHandlers{Svc: services.Profiles}
	commentHandlers := &CommentHandlers{Svc: services.Comments}
	notificationHandlers := &NotificationHandlers{Svc: services.Notifications}
	feedbackHandlers := &FeedbackHandlers{Svc: services.Feedback}

	registerProcessRoutes(mux, processHandlers, services.Auth)
	registerStageRoutes(mux, stageHandlers, services.Auth)
	registerChartRoutes(mux, chartHandlers, services.Auth)
	registerShareRoutes(mux, shareHandlers)
	registerProfileRoutes(mux, profileHandlers, commentHandlers, services.Auth)
	registerNotificationRoutes(mux, notificationHandlers, services.Auth)
	registerFeedbackRoutes(mux, feedbackHandlers, services.Auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.Auth != nil {
		authHandlers := &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: logger}
		registerAuthRoutes(mux, authHandlers)
	}

	var handler http.Handler = mux
	if services.CompressionEnabled {
		handler = Compression(CompressionConfig{Level: services.CompressionLevel, Logger: logger})(handler)
	}
	handler = Metrics(services.Metrics)(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

// requireAuth wraps h with RequireAuth when an auth service is configured.
// Servers without auth (tests, local tooling) fall through unauthenticated.
func requireAuth(h http.HandlerFunc, auth AuthServiceInterface) http.Handler {
	if auth == nil {
		return h
	}
	return RequireAuth(auth)(h)
}

func registerProcessRoutes(mux *http.ServeMux, h *ProcessHandlers, auth AuthServiceInterface) {
	mux.Handle("GET /api/processes", requireAuth(h.List, auth))
	mux.Handle("POST /api/processes", requireAuth(h.Create, auth))
	mux.Handle("GET /api/processes/{id}", requireAuth(h.GetByID, auth))
	mux.Handle("PUT /api/processes/{id}", requireAuth(h.Update, auth))
	mux.Handle("DELETE /api/processes/{id}", requireAuth(h.Delete, auth))
	mux.Handle("GET /api/processes/{id}/details", requireAuth(h.GetDetail, auth))
	mux.Handle("POST /api/processes/{id}/share", requireAuth(h.EnableSharing, auth))
	mux.Handle("DELETE /api/processes/{id}/share", requireAuth(h.DisableSharing, auth))
	mux.Handle("POST /api/processes/bulk-delete", requireAuth(h.BulkDelete, auth))
	mux.Handle("POST /api/processes/bulk-status", requireAuth(h.BulkStatus, auth))
}

func registerStageRoutes(mux *http.ServeMux, h *StageHandlers, auth AuthServiceInterface) {
	mux.Handle("GET /api/processes/{id}/stages", requireAuth(h.ListByProcess, auth))
	mux.Handle("POST /api/stages", requireAuth(h.Create, auth))
	mux.Handle("PUT /api/stages/{id}", requireAuth(h.Update, auth))
	mux.Handle("DELETE /api/stages/{id}", requireAuth(h.Delete, auth))
}

func registerChartRoutes(mux *http.ServeMux, h *ChartHandlers, auth AuthServiceInterface) {
	mux.Handle("GET /api/charts/stage-counts", requireAuth(h.StageCounts, auth))
	mux.Handle("GET /api/charts/status", requireAuth(h.StatusDistribution, auth))
	mux.Handle("GET /api/charts/timeline", requireAuth(h.Timeline, auth))
	mux.Handle("GET /api/charts/flow", requireAuth(h.Flow, auth))
	mux.Handle("GET /api/charts/dashboard", requireAuth(h.Dashboard, auth))
}

func registerShareRoutes(mux *http.ServeMux, h *ShareHandlers) {
	mux.HandleFunc("GET /api/share/{share_id}", h.Resolve)
}

func registerProfileRoutes(mux *http.ServeMux, h *ProfileHandlers, c *CommentHandlers, auth AuthServiceInterface) {
	// Profile pages and comment threads are publicly readable.
	mux.HandleFunc("GET /api/profiles/{username}", h.Get)
	mux.HandleFunc("GET /api/profiles/{username}/analytics", h.Analytics)
	mux.HandleFunc("GET /api/profiles/{username}/comments", c.List)

	// Mutations require a session so the author can be attributed.
	mux.Handle("POST /api/profiles/{username}/comments", requireAuth(c.Create, auth))
	mux.Handle("POST /api/profiles/{username}/comments/{comment_id}/replies", requireAuth(c.Reply, auth))
	mux.Handle("PUT /api/profiles/{username}/comments/{comment_id}", requireAuth(c.Update, auth))
	mux.Handle("DELETE /api/profiles/{username}/comments/{comment_id}", requireAuth(c.Delete, auth))
	mux.Handle("POST /api/profiles/{username}/comments/{comment_id}/upvote", requireAuth(c.ToggleUpvote, auth))
	mux.Handle("POST /api/profiles/{username}/comments/{comment_id}/answer", requireAuth(c.MarkAnswered, auth))
}

func registerNotificationRoutes(mux *http.ServeMux, h *NotificationHandlers, auth AuthServiceInterface) {
	mux.Handle("GET /api/notifications", requireAuth(h.List, auth))
	mux.Handle("GET /api/notifications/unread-count", requireAuth(h.UnreadCount, auth))
	mux.Handle("POST /api/notifications/{id}/read", requireAuth(h.MarkRead, auth))
	mux.Handle("POST /api/notifications/read-all", requireAuth(h.MarkAllRead, auth))
}

func registerFeedbackRoutes(mux *http.ServeMux, h *FeedbackHandlers, auth AuthServiceInterface) {
	// Feedback submission stays open; the session, when present, attributes it.
	if auth != nil {
		mux.Handle("POST /api/feedback", OptionalAuth(auth)(http.HandlerFunc(h.Submit)))
	} else {
		mux.HandleFunc("POST /api/feedback", h.Submit)
	}
	mux.Handle("GET /api/feedback", requireAuth(h.List, auth))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}
