package httpx

import (
	"net/http"

	"github.com/offertrack/track-ui-api/internal/service"
)

// ChartHandlers provides HTTP handlers for chart aggregation endpoints.
// All aggregation happens in the service layer over the caller's processes;
// the handlers only shape the transport.
type ChartHandlers struct {
	Svc *service.ChartService
}

// StageCounts handles GET /api/charts/stage-counts.
func (h *ChartHandlers) StageCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Svc.StageCounts(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, counts)
}

// StatusDistribution handles GET /api/charts/status.
func (h *ChartHandlers) StatusDistribution(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.Svc.StatusDistribution(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, statuses)
}

// Timeline handles GET /api/charts/timeline.
func (h *ChartHandlers) Timeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.Svc.Timeline(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, timeline)
}

// Flow handles GET /api/charts/flow.
func (h *ChartHandlers) Flow(w http.ResponseWriter, r *http.Request) {
	flow, err := h.Svc.Flow(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, flow)
}

// Dashboard handles GET /api/charts/dashboard.
// It bundles the summary metrics with the stage and status breakdowns so the
// landing page needs a single round trip.
func (h *ChartHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Svc.Dashboard(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, dashboard)
}
