package licensing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/akshara-fonts/akshara/app/models"
	"github.com/akshara-fonts/akshara/app/repository"
)

var (
	ErrUnknownUser        = errors.New("unknown user")
	ErrUnknownFont        = errors.New("unknown font")
	ErrInvalidLicenseType = errors.New("invalid license type")
)

// Issuer turns a purchase/claim intent into exactly one active license per
// (user, font) pair. Repeated calls are idempotent and return the original
// license with restored=true.
type Issuer struct {
	users    repository.UserRepository
	fonts    repository.FontRepository
	licenses repository.LicenseRepository

	// Default webfont domain allowlist for new licenses.
	platformDomain string

	// Simulated provisioning latency standing in for an asynchronous
	// payment call. Applied before the idempotency check so retries that
	// race the first attempt still collapse onto one license.
	provisioningDelay time.Duration

	mu    sync.Mutex
	pairs map[string]*sync.Mutex
}

// NewIssuer creates a license issuer. platformDomain is added to every new
// license's domain allowlist next to localhost; provisioningDelay may be
// zero.
func NewIssuer(users repository.UserRepository, fonts repository.FontRepository, licenses repository.LicenseRepository, platformDomain string, provisioningDelay time.Duration) *Issuer {
	return &Issuer{
		users:             users,
		fonts:             fonts,
		licenses:          licenses,
		platformDomain:    platformDomain,
		provisioningDelay: provisioningDelay,
		pairs:             make(map[string]*sync.Mutex),
	}
}

// Issue creates or restores the license for (userID, fontID). The boolean
// result is true when an existing active license was returned instead of a
// new one being created.
func (i *Issuer) Issue(ctx context.Context, userID, fontID, licenseType string) (*models.License, bool, error) {
	if !models.IsValidLicenseType(licenseType) {
		return nil, false, ErrInvalidLicenseType
	}

	if _, err := i.users.GetByID(userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrUnknownUser
		}
		return nil, false, err
	}
	font, err := i.fonts.GetByID(fontID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrUnknownFont
		}
		return nil, false, err
	}

	// Cosmetic payment-processing delay. A timer select, never a sleep in
	// the handler's critical section, so unrelated requests are not
	// starved and issuance stays cancellable up to the store write.
	if i.provisioningDelay > 0 {
		select {
		case <-time.After(i.provisioningDelay):
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}

	// Serialize check-then-create per (user, font) pair: first writer
	// wins, every racing call restores the same license.
	pair := i.pairLock(userID, fontID)
	pair.Lock()
	defer pair.Unlock()

	existing, err := i.licenses.FindActive(userID, fontID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	fingerprint, err := models.NewFingerprint()
	if err != nil {
		return nil, false, err
	}
	license := &models.License{
		ID:          models.NewLicenseID(),
		UserID:      userID,
		FontID:      font.ID,
		LicenseType: licenseType,
		Scope:       models.ScopeForLicenseType(licenseType),
		Domains:     i.defaultDomains(),
		IssuedAt:    time.Now(),
		Status:      models.LICENSE_STATUS_ACTIVE,
		Fingerprint: fingerprint,
	}
	if err := i.licenses.Create(license); err != nil {
		return nil, false, err
	}

	log.Infof("[Licensing] issued license %s (font=%s user=%s type=%s)", license.ID, font.ID, userID, licenseType)
	return license, false, nil
}

func (i *Issuer) defaultDomains() []string {
	domains := []string{"localhost"}
	if d := strings.TrimSpace(i.platformDomain); d != "" {
		domains = append(domains, d)
	}
	return domains
}

func (i *Issuer) pairLock(userID, fontID string) *sync.Mutex {
	key := userID + "\x00" + fontID
	i.mu.Lock()
	defer i.mu.Unlock()
	m, ok := i.pairs[key]
	if !ok {
		m = &sync.Mutex{}
		i.pairs[key] = m
	}
	return m
}
