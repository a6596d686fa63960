package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

const redisKeyPrefix = "hireboard:ratelimit:"

type RedisLimiter struct {
	client redis.Scripter
	script *redis.Script
}

func NewRedisLimiter(client redis.Scripter) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
	}
}

// Allow fails open when Redis is unreachable.
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{redisKeyPrefix + key}, ttl, limit).Int64()
	if err != nil {
		slog.WarnContext(ctx, "rate limiter unavailable", slog.String("error", err.Error()))
		return true
	}
	return allowed == 1
}
