package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-room-booking/internal/config"
)

// cachedResponse is the JSON envelope stored in Redis for each cached
// browse response.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyRecorder tees the response body up to a size limit while
// forwarding it to the client unchanged.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (w *bodyRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	if w.buf.Len() < w.limit {
		room := w.limit - w.buf.Len()
		if len(b) <= room {
			w.buf.Write(b)
		} else {
			w.buf.Write(b[:room])
		}
	}
	return w.ResponseWriter.Write(b)
}

// ResponseCache caches successful GET responses of the wrapped routes
// in Redis for the configured TTL.  The cache key is route plus raw
// query, so hotel and room listings for the same parameters are served
// from Redis until they expire.  Oversized bodies and non-200 responses
// are not cached.  With caching disabled or Redis unavailable the
// middleware is a pass-through.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cfg.Prefix + ":" + c.Path() + "?" + c.Request().URL.RawQuery
			ctx := c.Request().Context()

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var hit cachedResponse
				if json.Unmarshal(raw, &hit) == nil {
					return c.Blob(hit.Status, hit.ContentType, hit.Body)
				}
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				return err
			}
			if rec.status == http.StatusOK && rec.buf.Len() < cfg.MaxBodyBytes {
				entry := cachedResponse{
					Status:      rec.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        rec.buf.Bytes(),
				}
				if raw, err := json.Marshal(entry); err == nil {
					rdb.Set(ctx, key, raw, cfg.TTL)
				}
			}
			return nil
		}
	}
}

// InvalidateCache drops all cached entries under the configured prefix.
// Mutating handlers call it after writes that change public listings
// (room status changes, new rooms).
func InvalidateCache(ctx context.Context, cfg config.CacheConfig, rdb *redis.Client) {
	if !cfg.Enabled || rdb == nil {
		return
	}
	iter := rdb.Scan(ctx, 0, cfg.Prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		rdb.Del(ctx, iter.Val())
	}
}
