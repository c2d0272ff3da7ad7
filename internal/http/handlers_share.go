package httpx

import (
	"net/http"

	"github.com/offertrack/track-ui-api/internal/service"
)

// ShareHandlers serves publicly shared processes. No authentication is
// required; access control is the share id itself.
type ShareHandlers struct {
	Svc *service.ShareService
}

// Resolve handles GET /api/share/{share_id}.
func (h *ShareHandlers) Resolve(w http.ResponseWriter, r *http.Request) {
	shared, err := h.Svc.Resolve(r.Context(), r.PathValue("share_id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, shared)
}
