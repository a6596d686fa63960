package handlers

import (
	"fmt"
	"net/http"

	"hireboard/internal/http/metrics"
)

type MetricsHandler struct {
	collector *metrics.Collector
}

func NewMetricsHandler(collector *metrics.Collector) *MetricsHandler {
	return &MetricsHandler{collector: collector}
}

func (h *MetricsHandler) Get(w http.ResponseWriter, _ *http.Request) {
	var snap metrics.Snapshot
	if h.collector != nil {
		snap = h.collector.Snapshot()
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_, _ = fmt.Fprintf(w, "# HELP hireboard_requests_total Total number of HTTP requests.\n")
	_, _ = fmt.Fprintf(w, "# TYPE hireboard_requests_total counter\n")
	_, _ = fmt.Fprintf(w, "hireboard_requests_total %d\n", snap.Requests)
	_, _ = fmt.Fprintf(w, "# HELP hireboard_errors_total Total number of 5xx HTTP responses.\n")
	_, _ = fmt.Fprintf(w, "# TYPE hireboard_errors_total counter\n")
	_, _ = fmt.Fprintf(w, "hireboard_errors_total %d\n", snap.Errors)
	_, _ = fmt.Fprintf(w, "# HELP hireboard_error_responses_total Error responses by error code.\n")
	_, _ = fmt.Fprintf(w, "# TYPE hireboard_error_responses_total counter\n")
	for _, item := range snap.ErrorCodes {
		_, _ = fmt.Fprintf(w, "hireboard_error_responses_total{code=%q} %d\n", item.Code, item.Count)
	}
}
