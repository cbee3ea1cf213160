package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshara-fonts/akshara/app/models"
	"github.com/akshara-fonts/akshara/app/repository"
)

func TestRecord_AppendsEntry(t *testing.T) {
	t.Parallel()

	logs := repository.NewMemoryAccessLogRepository()
	logger := NewLogger(logs, nil)

	logger.Record(models.ACCESS_KIND_WEBFONT, models.LicenseRefFree, "hind", Context{
		IP:      "203.0.113.7",
		Origin:  "example.com",
		Allowed: true,
	})
	logger.Record(models.ACCESS_KIND_DOWNLOAD, "lic_abc", "rozha", Context{
		IP:        "203.0.113.7",
		UserAgent: "curl/8.0",
		Allowed:   true,
	})
	logger.Record(models.ACCESS_KIND_WEBFONT, models.LicenseRefNone, "rozha", Context{
		IP:      "203.0.113.7",
		Origin:  "evil.example",
		Allowed: false,
	})

	entries, err := logs.ListByFont("rozha", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.LicenseRefNone, entries[0].LicenseID)
	assert.False(t, entries[0].Allowed)
	assert.Equal(t, "lic_abc", entries[1].LicenseID)
	assert.Equal(t, "curl/8.0", entries[1].UserAgent)

	count, err := logs.CountByLicense("lic_abc")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

type failingAccessLog struct{}

func (failingAccessLog) Append(*models.AccessLogEntry) error { return assert.AnError }
func (failingAccessLog) ListByFont(string, int) ([]models.AccessLogEntry, error) {
	return nil, assert.AnError
}
func (failingAccessLog) CountByLicense(string) (int64, error) { return 0, assert.AnError }

func TestRecord_SwallowsStoreFailure(t *testing.T) {
	t.Parallel()

	logger := NewLogger(failingAccessLog{}, nil)

	// Must not panic or surface the error; the delivery decision already
	// happened.
	logger.Record(models.ACCESS_KIND_WEBFONT, models.LicenseRefFree, "hind", Context{Allowed: true})
}
