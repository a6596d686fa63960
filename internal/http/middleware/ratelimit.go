package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"hireboard/internal/common"
	"hireboard/internal/http/response"
)

type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) bool
}

type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rateBucket
	now     func() time.Time
}

type rateBucket struct {
	count     int
	windowEnd time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{buckets: make(map[string]*rateBucket), now: time.Now}
}

// Allow counts key in a fixed window and reports whether it is still under limit.
func (r *RateLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.evictExpired(now)
	bucket, ok := r.buckets[key]
	if !ok || now.After(bucket.windowEnd) {
		r.buckets[key] = &rateBucket{count: 1, windowEnd: now.Add(window)}
		return true
	}
	if bucket.count >= limit {
		return false
	}
	bucket.count++
	return true
}

func (r *RateLimiter) evictExpired(now time.Time) {
	if len(r.buckets) < 1024 {
		return
	}
	for key, bucket := range r.buckets {
		if now.After(bucket.windowEnd) {
			delete(r.buckets, key)
		}
	}
}

func RateLimit(limiter Limiter, keyFn func(*http.Request) string, limit int, window time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}
			key := keyFn(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !limiter.Allow(r.Context(), key, limit, window) {
				response.Error(w, common.NewError(common.CodeRateLimited, "rate limit exceeded", nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
