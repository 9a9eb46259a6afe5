package config

// Redis backs the distributed rate limiter and the public browse cache.
// Connection parameters come from the environment; when the server is
// unreachable at startup the constructor returns nil and both features
// degrade to no-ops.

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from REDIS_ADDR (host:port,
// default localhost:6379), REDIS_PASSWORD and REDIS_DB.  It pings the
// server with a short timeout and returns nil on failure so callers can
// disable caching and rate limiting instead of crashing.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	dbNum := 0
	if s := os.Getenv("REDIS_DB"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			dbNum = n
		}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
