package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedApp() *fiber.App {
	app := fiber.New(fiber.Config{ProxyHeader: "X-Forwarded-For"})
	app.Use(NewRateLimiter(nil))
	app.Get("/api/fonts", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func limitedRequest(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/fonts", nil)
	req.Header.Set("X-Forwarded-For", ip)
	return req
}

func TestRateLimiter_BlocksAfterBudget(t *testing.T) {
	app := newLimitedApp()

	for i := 0; i < RateLimitMax; i++ {
		resp, err := app.Test(limitedRequest("203.0.113.7"), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "request %d", i+1)
	}

	resp, err := app.Test(limitedRequest("203.0.113.7"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiter_BudgetIsPerIP(t *testing.T) {
	app := newLimitedApp()

	for i := 0; i < RateLimitMax; i++ {
		resp, err := app.Test(limitedRequest("203.0.113.7"), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(limitedRequest("203.0.113.7"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	// A different client still has its full budget.
	resp, err = app.Test(limitedRequest("198.51.100.9"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
