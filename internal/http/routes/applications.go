package routes

import "net/http"

type ApplicationController interface {
	Apply(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListByJob(w http.ResponseWriter, r *http.Request)
}

func Applications(controller ApplicationController, applicants, recruiters Guard) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /{$}", guarded(applicants, controller.Apply))
	mux.Handle("GET /{$}", guarded(recruiters, controller.ListByJob))
	mux.Handle("PATCH /{id}/status", guarded(recruiters, controller.UpdateStatus))
	return mux
}
