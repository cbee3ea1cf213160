package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshara-fonts/akshara/app/models"
	"github.com/akshara-fonts/akshara/app/repository"
)

func TestSeedCatalog(t *testing.T) {
	t.Parallel()

	repos := repository.NewMemoryRepositories()
	require.NoError(t, SeedCatalog(repos))

	fonts, err := repos.Font.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(len(SeedFonts)), fonts)

	pairings, err := repos.FontPairing.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(len(SeedPairings)), pairings)

	users, err := repos.User.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(len(SeedUsers)), users)
}

func TestSeedCatalog_Idempotent(t *testing.T) {
	t.Parallel()

	repos := repository.NewMemoryRepositories()
	require.NoError(t, SeedCatalog(repos))
	require.NoError(t, SeedCatalog(repos))

	fonts, err := repos.Font.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(len(SeedFonts)), fonts)
}

func TestSeedFonts_AllValid(t *testing.T) {
	t.Parallel()

	for i := range SeedFonts {
		font := SeedFonts[i]
		assert.NoError(t, font.Validate(), "font %s", font.ID)
	}
}

func TestSeedPairings_ReferenceSeededFonts(t *testing.T) {
	t.Parallel()

	ids := make(map[string]struct{}, len(SeedFonts))
	for _, f := range SeedFonts {
		ids[f.ID] = struct{}{}
	}
	for _, p := range SeedPairings {
		_, ok := ids[p.HeadlineFontID]
		assert.True(t, ok, "pairing %s headline %s", p.ID, p.HeadlineFontID)
		_, ok = ids[p.BodyFontID]
		assert.True(t, ok, "pairing %s body %s", p.ID, p.BodyFontID)
	}
}

func TestSeedFonts_OFLAreFree(t *testing.T) {
	t.Parallel()

	for _, f := range SeedFonts {
		if f.LicenseType == models.LICENSE_TYPE_OFL {
			assert.Zero(t, f.Price, "font %s", f.ID)
		}
	}
}
