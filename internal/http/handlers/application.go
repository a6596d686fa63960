package handlers

import (
	"net/http"
	"strings"
	"time"

	"hireboard/internal/app"
	"hireboard/internal/common"
	"hireboard/internal/domain/applicant"
	"hireboard/internal/http/middleware"
	"hireboard/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	limiter      middleware.Limiter
	applyLimit   int
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter, applyLimit int) *ApplicationHandler {
	if applyLimit <= 0 {
		applyLimit = 3
	}
	return &ApplicationHandler{applications: applications, limiter: limiter, applyLimit: applyLimit}
}

type applyRequest struct {
	JobID string `json:"job_id"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	applicantID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := parseJobID(req.JobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := "apply:" + jobID.String() + ":" + applicantID.String()
		if !h.limiter.Allow(r.Context(), key, h.applyLimit, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	created, err := h.applications.Apply(r.Context(), jobID, applicantID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		response.Error(w, common.NewValidationError("status is required", map[string]string{"status": "status is required"}))
		return
	}
	updated, err := h.applications.UpdateStatus(r.Context(), applicationID, applicant.ApplicationStatus(req.Status), actorID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := parseJobID(r.URL.Query().Get("job_id"))
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.applications.ListByJob(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func parseJobID(value string) (common.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return "", common.NewValidationError("invalid request", map[string]string{"job_id": "job_id is required"})
	}
	parsed, err := common.ParseUUID(value)
	if err != nil {
		return "", common.NewValidationError("invalid request", map[string]string{"job_id": "invalid uuid"})
	}
	return parsed, nil
}
