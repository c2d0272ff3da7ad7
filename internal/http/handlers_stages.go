package httpx

import (
	"net/http"

	"github.com/offertrack/track-ui-api/internal/domain/model"
	"github.com/offertrack/track-ui-api/internal/service"
)

// StageHandlers provides HTTP handlers for process stage operations.
type StageHandlers struct {
	Svc *service.StageService
}

// ListByProcess handles GET /api/processes/{id}/stages.
func (h *StageHandlers) ListByProcess(w http.ResponseWriter, r *http.Request) {
	processID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	stages, err := h.Svc.ListByProcess(r.Context(), processID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stages)
}

// Create handles POST /api/stages.
func (h *StageHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateStageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	stage, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, stage)
}

// Update handles PUT /api/stages/{id}.
func (h *StageHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req *model.UpdateStageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	stage, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stage)
}

// Delete handles DELETE /api/stages/{id}.
func (h *StageHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
