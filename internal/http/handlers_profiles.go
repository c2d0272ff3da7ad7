package httpx

import (
	"net/http"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
	"github.com/offertrack/track-ui-api/internal/service"
)

// ProfileHandlers serves public profile pages and their analytics.
type ProfileHandlers struct {
	Svc *service.ProfileService
}

// Get handles GET /api/profiles/{username}.
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Svc.Get(r.Context(), r.PathValue("username"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// Analytics handles GET /api/profiles/{username}/analytics.
// The payload includes the profile's public processes plus the chart bundle
// built over them.
func (h *ProfileHandlers) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.Svc.Analytics(r.Context(), r.PathValue("username"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, analytics)
}

// CommentHandlers provides HTTP handlers for profile comment threads.
type CommentHandlers struct {
	Svc *service.CommentService
}

// refOrError builds the comment reference from the request path, writing a
// validation error when the comment id is malformed.
func refOrError(w http.ResponseWriter, r *http.Request) (core.CommentRef, bool) {
	id, ok := pathID(w, r, "comment_id")
	if !ok {
		return core.CommentRef{}, false
	}
	return core.CommentRef{Username: r.PathValue("username"), CommentID: id}, true
}

// List handles GET /api/profiles/{username}/comments.
func (h *CommentHandlers) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.Svc.List(r.Context(), r.PathValue("username"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, comments)
}

// Create handles POST /api/profiles/{username}/comments.
func (h *CommentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateCommentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	comment, err := h.Svc.Create(r.Context(), r.PathValue("username"), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, comment)
}

// Reply handles POST /api/profiles/{username}/comments/{comment_id}/replies.
func (h *CommentHandlers) Reply(w http.ResponseWriter, r *http.Request) {
	ref, ok := refOrError(w, r)
	if !ok {
		return
	}

	var req *model.CreateCommentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	comment, err := h.Svc.Reply(r.Context(), ref, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, comment)
}

// Update handles PUT /api/profiles/{username}/comments/{comment_id}.
func (h *CommentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	ref, ok := refOrError(w, r)
	if !ok {
		return
	}

	var req *model.UpdateCommentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	comment, err := h.Svc.Update(r.Context(), ref, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, comment)
}

// Delete handles DELETE /api/profiles/{username}/comments/{comment_id}.
func (h *CommentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ref, ok := refOrError(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Delete(r.Context(), ref); err != nil {
		WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleUpvote handles POST /api/profiles/{username}/comments/{comment_id}/upvote.
func (h *CommentHandlers) ToggleUpvote(w http.ResponseWriter, r *http.Request) {
	ref, ok := refOrError(w, r)
	if !ok {
		return
	}

	comment, err := h.Svc.ToggleUpvote(r.Context(), ref)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, comment)
}

// MarkAnswered handles POST /api/profiles/{username}/comments/{comment_id}/answer.
func (h *CommentHandlers) MarkAnswered(w http.ResponseWriter, r *http.Request) {
	ref, ok := refOrError(w, r)
	if !ok {
		return
	}

	comment, err := h.Svc.MarkAnswered(r.Context(), ref)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, comment)
}
