package handlers

import (
	"net/http"

	"hireboard/internal/app"
	"hireboard/internal/domain/location"
	"hireboard/internal/http/response"
)

type LocationHandler struct {
	locations *app.LocationService
}

func NewLocationHandler(locations *app.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

type locationRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// GetAllLocations lists locations ordered by name. Limit and offset come from
// the query string; the service clamps them.
func (h *LocationHandler) GetAllLocations(w http.ResponseWriter, r *http.Request) {
	items, err := h.locations.List(r.Context(), intQuery(r, "limit", 0), intQuery(r, "offset", 0))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.locations.Create(r.Context(), location.Location{Name: req.Name, City: req.City, Country: req.Country})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}
