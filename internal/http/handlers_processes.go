package httpx

import (
	"net/http"

	"github.com/offertrack/track-ui-api/internal/domain/model"
	"github.com/offertrack/track-ui-api/internal/service"
)

// ProcessHandlers provides HTTP handlers for application process operations.
type ProcessHandlers struct {
	Svc   *service.ProcessService
	Bulk  *service.BulkService
	Share *service.ShareService
}

// List handles GET /api/processes.
func (h *ProcessHandlers) List(w http.ResponseWriter, r *http.Request) {
	processes, err := h.Svc.List(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, processes)
}

// GetByID handles GET /api/processes/{id}.
func (h *ProcessHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	proc, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, proc)
}

// GetDetail handles GET /api/processes/{id}/details.
// The detail payload includes the full stage history.
func (h *ProcessHandlers) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.Svc.GetDetail(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, detail)
}

// Create handles POST /api/processes.
func (h *ProcessHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateProcessRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	proc, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, proc)
}

// Update handles PUT /api/processes/{id}.
func (h *ProcessHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req *model.UpdateProcessRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	proc, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, proc)
}

// Delete handles DELETE /api/processes/{id}.
func (h *ProcessHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EnableSharing handles POST /api/processes/{id}/share.
// The response carries the share identifier assigned by the tracker.
func (h *ProcessHandlers) EnableSharing(w http.ResponseWriter, r *http.Request) {
	h.setPublic(w, r, true)
}

// DisableSharing handles DELETE /api/processes/{id}/share.
func (h *ProcessHandlers) DisableSharing(w http.ResponseWriter, r *http.Request) {
	h.setPublic(w, r, false)
}

func (h *ProcessHandlers) setPublic(w http.ResponseWriter, r *http.Request, public bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	proc, err := h.Share.SetPublic(r.Context(), id, public)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, proc)
}

// bulkIDsRequest is the body shape for bulk deletion.
type bulkIDsRequest struct {
	IDs []int64 `json:"ids"`
}

// bulkStatusRequest is the body shape for bulk status updates.
type bulkStatusRequest struct {
	IDs    []int64 `json:"ids"`
	Status string  `json:"status"`
}

// bulkResponse wraps per-item outcomes for bulk operations.
type bulkResponse struct {
	Results []service.BulkResult `json:"results"`
}

// BulkDelete handles POST /api/processes/bulk-delete.
// Items are processed one at a time; failures are reported per id.
func (h *ProcessHandlers) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkIDsRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	results, err := h.Bulk.DeleteProcesses(r.Context(), req.IDs)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, bulkResponse{Results: results})
}

// BulkStatus handles POST /api/processes/bulk-status.
func (h *ProcessHandlers) BulkStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	results, err := h.Bulk.UpdateStatus(r.Context(), req.IDs, model.ProcessStatus(req.Status))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, bulkResponse{Results: results})
}
