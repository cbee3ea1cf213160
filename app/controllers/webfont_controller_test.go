package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshara-fonts/akshara/app/models"
)

func newWebfontRequest(fontID, weight, origin string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/webfonts/"+fontID+"/"+weight, nil)
	if origin != "" {
		req.Header.Set(fiber.HeaderOrigin, origin)
	}
	return req
}

func TestHandleServeWebfont_OFLServedToAnyOrigin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	resp, err := env.app.Test(newWebfontRequest("hind", "400", "https://evil.example"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "font/woff2", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "https://evil.example", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, fiber.HeaderOrigin, resp.Header.Get(fiber.HeaderVary))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "woff2-bytes", string(body))
}

func TestHandleServeWebfont_DenialIsSilent(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	resp, err := env.app.Test(newWebfontRequest("rozha", "400", "https://unlicensed.example"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// No error body: callers must not learn why they were refused.
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestHandleServeWebfont_NonNumericWeightDenied(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	resp, err := env.app.Test(newWebfontRequest("hind", "regular", "https://example.com"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestHandleServeWebfont_LicensedOriginServed(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	require.NoError(t, env.repos.License.Create(&models.License{
		ID: "lic_web", UserID: "u-1001", FontID: "rozha",
		LicenseType: models.LICENSE_TYPE_COMMERCIAL, Scope: models.SCOPE_WEB,
		Domains: []string{"studio.dev"}, IssuedAt: time.Now(),
		Status: models.LICENSE_STATUS_ACTIVE, Fingerprint: "fp_test",
	}))

	resp, err := env.app.Test(newWebfontRequest("rozha", "400", "https://studio.dev"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleServeWebfont_MissingWeightFile(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	// Weight 700 is in the catalog but the fixture only ships the 400 cut.
	resp, err := env.app.Test(newWebfontRequest("hind", "700", "https://example.com"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "asset_not_found")
}

func TestHandleServeWebfont_DecisionsAreAudited(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.app.Test(newWebfontRequest("hind", "400", "https://example.com"), -1)
	require.NoError(t, err)
	_, err = env.app.Test(newWebfontRequest("rozha", "400", "https://example.com"), -1)
	require.NoError(t, err)

	allowed, err := env.repos.AccessLog.ListByFont("hind", 10)
	require.NoError(t, err)
	require.Len(t, allowed, 1)
	assert.True(t, allowed[0].Allowed)
	assert.Equal(t, models.LicenseRefFree, allowed[0].LicenseID)
	assert.Equal(t, "example.com", allowed[0].Origin)

	denied, err := env.repos.AccessLog.ListByFont("rozha", 10)
	require.NoError(t, err)
	require.Len(t, denied, 1)
	assert.False(t, denied[0].Allowed)
	assert.Equal(t, models.LicenseRefNone, denied[0].LicenseID)
}
