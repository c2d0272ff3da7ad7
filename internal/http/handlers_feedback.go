package httpx

import (
	"net/http"

	"github.com/offertrack/track-ui-api/internal/domain/model"
	"github.com/offertrack/track-ui-api/internal/service"
)

// FeedbackHandlers provides HTTP handlers for product feedback.
// Submission is open to anonymous callers; listing is admin-only and the
// service enforces that even if route wiring changes.
type FeedbackHandlers struct {
	Svc *service.FeedbackService
}

// Submit handles POST /api/feedback.
func (h *FeedbackHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateFeedbackRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	feedback, err := h.Svc.Submit(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, feedback)
}

// List handles GET /api/feedback.
func (h *FeedbackHandlers) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Svc.List(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, entries)
}
