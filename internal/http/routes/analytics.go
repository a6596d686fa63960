package routes

import "net/http"

type AnalyticsController interface {
	ApplicationsPerJob(w http.ResponseWriter, r *http.Request)
}

func Analytics(controller AnalyticsController, recruiters Guard) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /applications", guarded(recruiters, controller.ApplicationsPerJob))
	return mux
}
