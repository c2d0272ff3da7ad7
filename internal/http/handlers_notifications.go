package httpx

import (
	"net/http"

	"github.com/offertrack/track-ui-api/internal/service"
)

// NotificationHandlers provides HTTP handlers for the caller's notifications.
type NotificationHandlers struct {
	Svc *service.NotificationService
}

// List handles GET /api/notifications.
func (h *NotificationHandlers) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Svc.List(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, notifications)
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationHandlers) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Svc.UnreadCount(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, count)
}

// MarkRead handles POST /api/notifications/{id}/read.
func (h *NotificationHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	notification, err := h.Svc.MarkRead(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, notification)
}

// MarkAllRead handles POST /api/notifications/read-all.
func (h *NotificationHandlers) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.MarkAllRead(r.Context()); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
