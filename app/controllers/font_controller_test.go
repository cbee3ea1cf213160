package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshara-fonts/akshara/app/models"
)

func TestHandleGetFonts(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/api/fonts", nil)

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var fonts []models.Font
	require.NoError(t, json.Unmarshal(body, &fonts))
	require.Len(t, fonts, 2)
	assert.Equal(t, "hind", fonts[0].ID)
	assert.Equal(t, "rozha", fonts[1].ID)
	assert.Equal(t, models.LICENSE_TYPE_COMMERCIAL, fonts[1].LicenseType)
	assert.Equal(t, 1499, fonts[1].Price)
}

func TestHandleGetPairings(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/api/pairings", nil)

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var pairings []models.FontPairing
	require.NoError(t, json.Unmarshal(body, &pairings))
	require.Len(t, pairings, 1)
	assert.Equal(t, "rozha", pairings[0].HeadlineFontID)
	assert.Equal(t, "hind", pairings[0].BodyFontID)
}
