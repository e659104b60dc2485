// Copyright (c) 2026 Coinage. All rights reserved.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/forgeline/coinage/internal/platform/constants"
)

// Limiter decides whether a request from a given client IP may proceed.
type Limiter interface {
	Allow(ctx context.Context, ip string) (bool, error)
}

// # Redis-backed fixed window

// RedisLimiter counts requests per IP in a fixed window using INCR + EXPIRE.
// State lives in Redis so the limit holds across replicas.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisLimiter constructs a [RedisLimiter] with the platform defaults.
func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  constants.DefaultRateLimitBurst,
		window: constants.RateLimitWindow,
	}
}

// Allow increments the window counter for ip and reports whether it is
// within the limit. The first hit in a window sets the key's expiry.
func (limiter *RedisLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	key := constants.RedisPrefixRateLimit + ip

	count, err := limiter.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := limiter.client.Expire(ctx, key, limiter.window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(limiter.limit), nil
}

// # In-process fallback

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter is a per-IP token bucket held in process memory. It serves as
// the fallback when Redis is unreachable, so a cache outage degrades rate
// limiting to per-replica rather than disabling it.
type LocalLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
}

// NewLocalLimiter constructs a [LocalLimiter] and starts its cleanup loop.
// The loop stops when ctx is cancelled.
func NewLocalLimiter(ctx context.Context) *LocalLimiter {
	limiter := &LocalLimiter{clients: make(map[string]*rateLimitClient)}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				limiter.mu.Lock()
				for ip, clientInfo := range limiter.clients {
					if time.Since(clientInfo.lastSeen) > constants.RateLimitClientTTL {
						delete(limiter.clients, ip)
					}
				}
				limiter.mu.Unlock()
			case <-ctx.Done():
				return
			}
		}
	}()

	return limiter
}

// Allow checks the token bucket for ip. It never returns an error.
func (limiter *LocalLimiter) Allow(_ context.Context, ip string) (bool, error) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	clientInfo, found := limiter.clients[ip]
	if !found {
		clientInfo = &rateLimitClient{
			limiter: rate.NewLimiter(
				rate.Limit(constants.DefaultRateLimitRPS),
				constants.DefaultRateLimitBurst,
			),
		}
		limiter.clients[ip] = clientInfo
	}

	clientInfo.lastSeen = time.Now()
	return clientInfo.limiter.Allow(), nil
}

// # Rate Limit Middleware

// RateLimit limits requests per IP. It consults primary first (normally the
// Redis-backed limiter) and falls back to fallback when primary errors.
// A nil primary skips straight to the fallback.
func RateLimit(primary Limiter, fallback Limiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			clientIP := RealIP(request)

			allowed, err := false, error(nil)
			if primary != nil {
				allowed, err = primary.Allow(request.Context(), clientIP)
			}

			if primary == nil || err != nil {
				if err != nil {
					logger.Warn("rate_limit_fallback",
						slog.String("ip", clientIP),
						slog.Any("error", err),
					)
				}
				allowed, _ = fallback.Allow(request.Context(), clientIP)
			}

			if !allowed {
				writeError(writer, http.StatusTooManyRequests, "Too many requests. Please slow down.")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
