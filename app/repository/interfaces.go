package repository

import (
	"errors"

	"github.com/akshara-fonts/akshara/app/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned by exact lookups when no record exists. The
// Find* license operations instead return (nil, nil) when nothing matches,
// since callers only test existence.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user lookups. The license core
// never creates users; Create exists for seeding and administration.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Count() (int64, error)
}

// FontRepository defines the interface for catalog access.
type FontRepository interface {
	Create(font *models.Font) error
	GetByID(id string) (*models.Font, error)
	GetAll() ([]models.Font, error)
	Count() (int64, error)
	AddCounts(id string, webfontDelta, downloadDelta int64) error
}

// LicenseRepository defines the interface for license storage. It is
// policy-free: uniqueness of active licenses per (user, font) pair is
// enforced by the issuer, not here.
type LicenseRepository interface {
	Create(license *models.License) error
	GetByID(id string) (*models.License, error)
	GetByUserID(userID string) ([]models.License, error)
	FindActive(userID, fontID string) (*models.License, error)
	FindActiveForDomain(fontID, domain string) (*models.License, error)
	Revoke(id string) error
	Count() (int64, error)
}

// AccessLogRepository defines the interface for the append-only audit trail.
type AccessLogRepository interface {
	Append(entry *models.AccessLogEntry) error
	ListByFont(fontID string, limit int) ([]models.AccessLogEntry, error)
	CountByLicense(licenseID string) (int64, error)
}

// FontPairingRepository defines the interface for the curated pairing catalog.
type FontPairingRepository interface {
	Create(pairing *models.FontPairing) error
	GetAll() ([]models.FontPairing, error)
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User        UserRepository
	Font        FontRepository
	License     LicenseRepository
	AccessLog   AccessLogRepository
	FontPairing FontPairingRepository
}

// NewRepositories creates GORM-backed instances of all repositories.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Font:        NewFontRepository(db),
		License:     NewLicenseRepository(db),
		AccessLog:   NewAccessLogRepository(db),
		FontPairing: NewFontPairingRepository(db),
	}
}
