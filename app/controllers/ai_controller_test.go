package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshara-fonts/akshara/internal/pkg/aiinsight"
)

func newInsightRequest(body, bearer string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/ai/insights", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}
	return req
}

func TestHandleInsights_RequiresIdentity(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	resp, err := env.app.Test(newInsightRequest(`{"headlineFont":"Rozha Heritage","bodyFont":"Hind Akshara"}`, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestHandleInsights_MissingFields(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	resp, err := env.app.Test(newInsightRequest(`{"headlineFont":"Rozha Heritage"}`, "u-1001"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleInsights_FallbackWithoutUpstream(t *testing.T) {
	t.Parallel()

	// The fixture client carries no API key, so the upstream call fails and
	// the canned sentence is served with a 200.
	env := newTestEnv(t)
	resp, err := env.app.Test(newInsightRequest(`{"headlineFont":"Rozha Heritage","bodyFont":"Hind Akshara"}`, "u-1001"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, aiinsight.FallbackInsight, out.Text)
}

func TestHandleInsights_PerCallerCeiling(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	payload := `{"headlineFont":"Rozha Heritage","bodyFont":"Hind Akshara"}`

	for i := 0; i < 10; i++ {
		resp, err := env.app.Test(newInsightRequest(payload, "u-1001"), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, "request %d", i+1)
	}

	resp, err := env.app.Test(newInsightRequest(payload, "u-1001"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "rate_limited")

	// The ceiling is per caller, not global.
	resp, err = env.app.Test(newInsightRequest(payload, "u-1002"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
