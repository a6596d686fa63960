package routes

import "net/http"

type LocationController interface {
	GetAllLocations(w http.ResponseWriter, r *http.Request)
}

// Locations exposes the location list at the root of its mount point.
func Locations(controller LocationController) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", controller.GetAllLocations)
	return mux
}
