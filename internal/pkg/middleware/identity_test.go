package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshara-fonts/akshara/app/models"
	"github.com/akshara-fonts/akshara/app/repository"
	"github.com/akshara-fonts/akshara/internal/pkg/usercontext"
)

func newIdentityApp(t *testing.T) *fiber.App {
	t.Helper()

	users := repository.NewMemoryUserRepository()
	require.NoError(t, users.Create(&models.User{ID: "u-1001", Email: "asha@example.com", Name: "Asha Verma"}))

	app := fiber.New()
	app.Get("/whoami", RequireIdentity(users), func(c *fiber.Ctx) error {
		user := usercontext.GetUserContext(c)
		return c.JSON(fiber.Map{"userId": user.UserID, "name": user.Username})
	})
	return app
}

func TestRequireIdentity_MissingHeader(t *testing.T) {
	t.Parallel()

	app := newIdentityApp(t)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireIdentity_MalformedHeader(t *testing.T) {
	t.Parallel()

	app := newIdentityApp(t)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Basic dXNlcjpwYXNz")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireIdentity_UnknownUser(t *testing.T) {
	t.Parallel()

	app := newIdentityApp(t)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer u-9999")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireIdentity_ResolvesUser(t *testing.T) {
	t.Parallel()

	app := newIdentityApp(t)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer u-1001")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestExtractBearerIdentity_CaseInsensitiveScheme(t *testing.T) {
	t.Parallel()

	app := newIdentityApp(t)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "bearer u-1001")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
