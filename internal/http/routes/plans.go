package routes

import "net/http"

type PlanController interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// Plans serves reads publicly and puts writes behind admin.
func Plans(controller PlanController, admin Guard) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", controller.List)
	mux.HandleFunc("GET /{id}", controller.Get)
	mux.Handle("POST /{$}", guarded(admin, controller.Create))
	mux.Handle("PATCH /{id}", guarded(admin, controller.Update))
	mux.Handle("DELETE /{id}", guarded(admin, controller.Delete))
	return mux
}
