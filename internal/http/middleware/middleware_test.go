package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"hireboard/internal/common"
	"hireboard/internal/http/metrics"
	"hireboard/internal/observability"
	"hireboard/internal/security"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }), mark("a"), mark("b"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "handler" {
		t.Fatalf("unexpected order: %v", order)
	}
}

func TestRequestIDPropagatesHeader(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = observability.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "abc-123" || rec.Header().Get(RequestIDHeader) != "abc-123" {
		t.Fatalf("expected request id to propagate, got ctx=%q header=%q", seen, rec.Header().Get(RequestIDHeader))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("expected generated request id, got ctx=%q header=%q", seen, rec.Header().Get(RequestIDHeader))
	}
}

func TestRecoverReturnsInternalError(t *testing.T) {
	h := Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestMetricsCountsServerErrors(t *testing.T) {
	collector := metrics.NewCollector()
	status := http.StatusOK
	h := Metrics(collector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(status) }))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	status = http.StatusBadGateway
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	snap := collector.Snapshot()
	if snap.Requests != 2 || snap.Errors != 1 {
		t.Fatalf("expected 2 requests and 1 error, got %+v", snap)
	}
}

func TestTimeoutSetsDeadline(t *testing.T) {
	var hasDeadline bool
	h := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !hasDeadline {
		t.Fatal("expected request context to carry a deadline")
	}
}

func TestBodyLimitRejectsLargeBodies(t *testing.T) {
	var readErr error
	h := BodyLimit(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 16)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))
	if readErr == nil || readErr.Error() != "http: request body too large" {
		t.Fatalf("expected body too large error, got %v", readErr)
	}
}

func TestAuthenticateAndRequireRole(t *testing.T) {
	provider := security.NewJWTProvider("secret")
	auth := NewAuthMiddleware(provider)
	userID := common.NewUUID()

	var gotUser common.UUID
	h := auth.Authenticate(RequireRole(security.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})))

	cases := []struct {
		name   string
		role   security.Role
		header string
		want   int
	}{
		{name: "missing header", want: http.StatusUnauthorized},
		{name: "malformed header", header: "Token abc", want: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "wrong role", role: security.RoleApplicant, want: http.StatusForbidden},
		{name: "admin", role: security.RoleAdmin, want: http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			header := tc.header
			if tc.role != "" {
				token, _, err := provider.Generate(userID, tc.role, time.Minute)
				if err != nil {
					t.Fatalf("generate: %v", err)
				}
				header = "Bearer " + token
			}
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
	if gotUser != userID {
		t.Fatalf("expected user %s in context, got %s", userID, gotUser)
	}
}

func TestRateLimiterWindow(t *testing.T) {
	limiter := NewRateLimiter()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if !limiter.Allow(ctx, "k", 2, time.Minute) {
			t.Fatalf("expected call %d to be allowed", i+1)
		}
	}
	if limiter.Allow(ctx, "k", 2, time.Minute) {
		t.Fatal("expected third call to be limited")
	}
	if !limiter.Allow(ctx, "other", 2, time.Minute) {
		t.Fatal("expected separate key to be allowed")
	}
	now = now.Add(time.Minute + time.Second)
	if !limiter.Allow(ctx, "k", 2, time.Minute) {
		t.Fatal("expected new window to allow")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter()
	h := RateLimit(limiter, ClientIP, 1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Fatalf("request %d: expected %d, got %d", i+1, want, rec.Code)
		}
	}
}

func TestRedisLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer client.Close()
	limiter := NewRedisLimiter(client)
	if !limiter.Allow(context.Background(), "k", 1, time.Minute) {
		t.Fatal("expected limiter to fail open when redis is unreachable")
	}
	var nilLimiter *RedisLimiter
	if !nilLimiter.Allow(context.Background(), "k", 1, time.Minute) {
		t.Fatal("expected nil limiter to allow")
	}
}

