package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/akshara-fonts/akshara/internal/pkg/env"
)

const (
	// Per-IP budget on protected routes.
	RateLimitMax    = 30
	RateLimitWindow = 60 * time.Second
)

// NewRateLimiter builds the per-IP sliding window limiter used on all
// protected routes. A nil storage keeps counters in process memory (tests,
// single instance); production passes NewRateLimitStorage so counters are
// shared across instances.
func NewRateLimiter(storage fiber.Storage) fiber.Handler {
	cfg := limiter.Config{
		Max:                    RateLimitMax,
		Expiration:             RateLimitWindow,
		LimiterMiddleware:      limiter.SlidingWindow{},
		SkipSuccessfulRequests: false,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":   "rate_limited",
				"message": "Too many requests, retry later",
			})
		},
	}
	if storage != nil {
		cfg.Storage = storage
	}
	return limiter.New(cfg)
}

// NewRateLimitStorage returns the Redis-backed limiter storage configured
// from the environment.
func NewRateLimitStorage() fiber.Storage {
	port, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	if err != nil {
		port = 6379
	}
	return redis.New(redis.Config{
		Host: env.GetEnv("CACHE_HOST", "localhost"),
		Port: port,
	})
}
