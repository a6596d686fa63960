package http

import (
	"context"
	"net/http"
	"time"

	"hireboard/internal/http/handlers"
	"hireboard/internal/http/metrics"
	httpmw "hireboard/internal/http/middleware"
	"hireboard/internal/http/routes"
	"hireboard/internal/security"
)

type RouterDependencies struct {
	PlanHandler        *handlers.PlanHandler
	LocationHandler    *handlers.LocationHandler
	ApplicationHandler *handlers.ApplicationHandler
	AnalyticsHandler   *handlers.AnalyticsHandler
	MetricsHandler     *handlers.MetricsHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	// WriteLimiter caps admin writes per client IP; nil disables it.
	WriteLimiter   httpmw.Limiter
	WriteRateLimit int
	RequestTimeout time.Duration
	// Health reports storage readiness; nil means always healthy.
	Health func(context.Context) error
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if deps.Health != nil {
			if err := deps.Health(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("unavailable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /metrics", deps.MetricsHandler.Get)

	admin := rateLimited(deps.WriteLimiter, deps.WriteRateLimit, requireRoles(deps.AuthMiddleware, security.RoleAdmin))
	recruiters := requireRoles(deps.AuthMiddleware, security.RoleAdmin, security.RoleRecruiter)
	applicants := requireRoles(deps.AuthMiddleware, security.RoleApplicant)

	routes.Mount(mux, "/api/plans", routes.Plans(deps.PlanHandler, admin))
	routes.Mount(mux, "/api/locations", routes.Locations(deps.LocationHandler))
	createLocation := admin(http.HandlerFunc(deps.LocationHandler.Create))
	mux.Handle("POST /api/locations", createLocation)
	mux.Handle("POST /api/locations/{$}", createLocation)
	routes.Mount(mux, "/api/applications", routes.Applications(deps.ApplicationHandler, applicants, recruiters))
	routes.Mount(mux, "/api/analytics", routes.Analytics(deps.AnalyticsHandler, recruiters))

	return httpmw.Chain(mux,
		httpmw.RequestID,
		httpmw.Logging,
		httpmw.Tracing,
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover,
		httpmw.Metrics(deps.Metrics),
		httpmw.Timeout(deps.RequestTimeout),
	)
}

func rateLimited(limiter httpmw.Limiter, limit int, guard routes.Guard) routes.Guard {
	if limiter == nil || limit <= 0 {
		return guard
	}
	throttle := httpmw.RateLimit(limiter, writeKey, limit, time.Minute)
	return func(next http.Handler) http.Handler {
		return throttle(guard(next))
	}
}

func writeKey(r *http.Request) string {
	return "write:" + httpmw.ClientIP(r)
}

func requireRoles(auth *httpmw.AuthMiddleware, roles ...security.Role) routes.Guard {
	return func(next http.Handler) http.Handler {
		return auth.Authenticate(httpmw.RequireRole(roles...)(next))
	}
}

