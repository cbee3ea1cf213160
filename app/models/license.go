package models

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	LICENSE_STATUS_ACTIVE  = "active"
	LICENSE_STATUS_REVOKED = "revoked"

	SCOPE_WEB   = "web"
	SCOPE_APP   = "app"
	SCOPE_PRINT = "print"
	SCOPE_ALL   = "all"
)

// License grants a user rights to use a font under a scope and domain set.
// A license is immutable after issuance except for the one-way status
// transition active -> revoked.
type License struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID      string    `gorm:"type:varchar(64);index:idx_licenses_user_font" json:"userId"`
	FontID      string    `gorm:"type:varchar(64);index:idx_licenses_user_font;index" json:"fontId"`
	LicenseType string    `gorm:"type:varchar(50)" json:"licenseType"`
	Scope       string    `gorm:"type:varchar(20)" json:"scope"`
	Domains     []string  `gorm:"serializer:json;type:text" json:"domains"`
	IssuedAt    time.Time `gorm:"type:timestamp" json:"issuedAt"`
	Status      string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	Fingerprint string    `gorm:"type:varchar(100)" json:"fingerprint"`
}

// IsActive reports whether the license status is active.
func (l *License) IsActive() bool {
	return l.Status == LICENSE_STATUS_ACTIVE
}

// AuthorizesDomain reports whether any entry in the license domain allowlist
// matches the given request domain. Matching is deliberately loose: an entry
// matches when it equals the domain or appears as a suffix/substring of it,
// so "example.com" covers "www.example.com" and "localhost" covers
// "localhost:3000".
func (l *License) AuthorizesDomain(domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return false
	}
	for _, d := range l.Domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if domain == d || strings.Contains(domain, d) {
			return true
		}
	}
	return false
}

// ScopeForLicenseType derives the usage scope from the license kind.
// OFL fonts are unrestricted; paid tiers start out web-only.
func ScopeForLicenseType(licenseType string) string {
	if licenseType == LICENSE_TYPE_OFL {
		return SCOPE_ALL
	}
	return SCOPE_WEB
}

// NewLicenseID returns a fresh unique license identifier.
func NewLicenseID() string {
	return "lic_" + uuid.New().String()
}

// NewFingerprint creates an opaque traceability token for audit correlation.
// It is not a cryptographic proof of anything.
func NewFingerprint() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "fp_" + hex.EncodeToString(b), nil
}
