package handlers

import (
	"net/http"

	"hireboard/internal/app"
	"hireboard/internal/domain/plan"
	"hireboard/internal/http/response"
)

type PlanHandler struct {
	plans *app.PlanService
}

func NewPlanHandler(plans *app.PlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.plans.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.plans.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	input, err := plan.ParseCreate(raw)
	if err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.plans.Create(r.Context(), input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	raw, err := readBody(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	patch, err := plan.ParseUpdate(raw)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.plans.Update(r.Context(), id, patch)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.plans.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}
