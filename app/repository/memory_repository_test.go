package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshara-fonts/akshara/app/models"
)

func activeLicense(id, userID, fontID string, domains []string) *models.License {
	return &models.License{
		ID:          id,
		UserID:      userID,
		FontID:      fontID,
		LicenseType: models.LICENSE_TYPE_COMMERCIAL,
		Scope:       models.SCOPE_WEB,
		Domains:     domains,
		IssuedAt:    time.Now(),
		Status:      models.LICENSE_STATUS_ACTIVE,
		Fingerprint: "fp_test",
	}
}

func TestMemoryLicenseRepository_FindActive(t *testing.T) {
	t.Parallel()

	repo := NewMemoryLicenseRepository()
	require.NoError(t, repo.Create(activeLicense("lic_1", "u-1001", "rozha", []string{"localhost"})))

	found, err := repo.FindActive("u-1001", "rozha")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "lic_1", found.ID)

	// No match is not an error.
	missing, err := repo.FindActive("u-1001", "hind")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryLicenseRepository_FindActiveForDomain(t *testing.T) {
	t.Parallel()

	repo := NewMemoryLicenseRepository()
	require.NoError(t, repo.Create(activeLicense("lic_1", "u-1001", "rozha", []string{"studio.dev"})))

	found, err := repo.FindActiveForDomain("rozha", "studio.dev")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "lic_1", found.ID)

	missing, err := repo.FindActiveForDomain("rozha", "other.example")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryLicenseRepository_Revoke(t *testing.T) {
	t.Parallel()

	repo := NewMemoryLicenseRepository()
	require.NoError(t, repo.Create(activeLicense("lic_1", "u-1001", "rozha", []string{"localhost"})))

	require.NoError(t, repo.Revoke("lic_1"))

	found, err := repo.FindActive("u-1001", "rozha")
	require.NoError(t, err)
	assert.Nil(t, found)

	// Revoking twice, or revoking an unknown id, is a not-found.
	assert.ErrorIs(t, repo.Revoke("lic_1"), ErrNotFound)
	assert.ErrorIs(t, repo.Revoke("lic_nope"), ErrNotFound)
}

func TestMemoryFontRepository_AddCounts(t *testing.T) {
	t.Parallel()

	repo := NewMemoryFontRepository()
	require.NoError(t, repo.Create(&models.Font{ID: "hind", Name: "Hind Akshara"}))

	require.NoError(t, repo.AddCounts("hind", 5, 2))
	require.NoError(t, repo.AddCounts("hind", 1, 0))

	font, err := repo.GetByID("hind")
	require.NoError(t, err)
	assert.Equal(t, int64(6), font.WebfontCount)
	assert.Equal(t, int64(2), font.DownloadCount)

	assert.ErrorIs(t, repo.AddCounts("nope", 1, 0), ErrNotFound)
}

func TestMemoryUserRepository_GetByEmail(t *testing.T) {
	t.Parallel()

	repo := NewMemoryUserRepository()
	require.NoError(t, repo.Create(&models.User{ID: "u-1001", Email: "asha@example.com", Name: "Asha Verma"}))

	user, err := repo.GetByEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1001", user.ID)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryAccessLogRepository_ListByFontNewestFirst(t *testing.T) {
	t.Parallel()

	repo := NewMemoryAccessLogRepository()
	for _, origin := range []string{"first.example", "second.example", "third.example"} {
		require.NoError(t, repo.Append(&models.AccessLogEntry{
			Kind: models.ACCESS_KIND_WEBFONT, LicenseID: models.LicenseRefFree,
			FontID: "hind", Origin: origin, Allowed: true,
		}))
	}

	entries, err := repo.ListByFont("hind", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "third.example", entries[0].Origin)
	assert.Equal(t, "second.example", entries[1].Origin)
}
