package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-room-booking/internal/config"
)

// tokenBucketScript refills and debits a per-client bucket atomically.
// State lives in a Redis hash {tokens, last_refill_ms} so concurrent
// instances of the service share one limit.
var tokenBucketScript = redis.NewScript(`
    local key = KEYS[1]
    local now_ms = tonumber(ARGV[1])
    local capacity = tonumber(ARGV[2])
    local refill = tonumber(ARGV[3])
    local interval_ms = tonumber(ARGV[4])
    local ttl_s = tonumber(ARGV[5])

    local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
    local tokens = tonumber(state[1])
    local last = tonumber(state[2])
    if tokens == nil or last == nil then
        tokens = capacity
        last = now_ms
    end

    local elapsed = math.max(0, now_ms - last)
    local steps = math.floor(elapsed / interval_ms)
    if steps > 0 then
        tokens = math.min(capacity, tokens + steps * refill)
        last = last + steps * interval_ms
    end

    local allowed = 0
    local retry_ms = 0
    if tokens > 0 then
        allowed = 1
        tokens = tokens - 1
    else
        retry_ms = math.max(0, interval_ms - (now_ms - last))
    end

    redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last)
    redis.call('EXPIRE', key, ttl_s)
    return { allowed, tokens, retry_ms }
`)

// RateLimit returns a token-bucket limiter keyed by client IP and
// route.  When disabled or no Redis client is available it passes every
// request through.  Redis errors fail open: a broken limiter must not
// take the API down with it.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("%s:%s:%s", cfg.Prefix, c.RealIP(), c.Path())
			args := []interface{}{
				time.Now().UnixMilli(),
				cfg.Capacity,
				cfg.RefillTokens,
				cfg.RefillInterval.Milliseconds(),
				int64(cfg.TTL / time.Second),
			}
			vals, err := tokenBucketScript.Run(c.Request().Context(), rdb, []string{key}, args...).Int64Slice()
			if err != nil || len(vals) != 3 {
				return next(c)
			}
			if vals[0] == 0 {
				retryAfter := (vals[2] + 999) / 1000
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
