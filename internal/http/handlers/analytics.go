package handlers

import (
	"net/http"

	"hireboard/internal/app"
	"hireboard/internal/http/response"
)

type AnalyticsHandler struct {
	analytics *app.AnalyticsService
}

func NewAnalyticsHandler(analytics *app.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) ApplicationsPerJob(w http.ResponseWriter, r *http.Request) {
	items, err := h.analytics.ApplicationsPerJob(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
