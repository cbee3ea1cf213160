package repository

import (
	"errors"
	"strings"

	"github.com/akshara-fonts/akshara/app/models"
	"gorm.io/gorm"
)

// licenseRepository implements the LicenseRepository interface
type licenseRepository struct {
	db *gorm.DB
}

// NewLicenseRepository creates a new license repository instance
func NewLicenseRepository(db *gorm.DB) LicenseRepository {
	return &licenseRepository{db: db}
}

// Create persists a new license record. Id and fingerprint must already be
// set by the caller (the issuer owns generation so that restored licenses
// keep their original identity).
func (r *licenseRepository) Create(license *models.License) error {
	return r.db.Create(license).Error
}

// GetByID retrieves a license by id.
func (r *licenseRepository) GetByID(id string) (*models.License, error) {
	var license models.License
	err := r.db.Where("id = ?", id).First(&license).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &license, nil
}

// GetByUserID returns all licenses held by a user, newest first.
func (r *licenseRepository) GetByUserID(userID string) ([]models.License, error) {
	var licenses []models.License
	err := r.db.Where("user_id = ?", userID).Order("issued_at DESC").Find(&licenses).Error
	return licenses, err
}

// FindActive returns the active license for a (user, font) pair, or
// (nil, nil) when none exists.
func (r *licenseRepository) FindActive(userID, fontID string) (*models.License, error) {
	var license models.License
	err := r.db.Where("user_id = ? AND font_id = ? AND status = ?",
		userID, fontID, models.LICENSE_STATUS_ACTIVE).First(&license).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &license, nil
}

// FindActiveForDomain returns an active license for the font whose domain
// allowlist matches the given domain, or (nil, nil) when none does. The
// allowlist match happens in Go since domains are stored as a serialized
// set; license counts per font are small.
func (r *licenseRepository) FindActiveForDomain(fontID, domain string) (*models.License, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil, nil
	}
	var licenses []models.License
	err := r.db.Where("font_id = ? AND status = ?", fontID, models.LICENSE_STATUS_ACTIVE).
		Find(&licenses).Error
	if err != nil {
		return nil, err
	}
	for i := range licenses {
		if licenses[i].AuthorizesDomain(domain) {
			return &licenses[i], nil
		}
	}
	return nil, nil
}

// Revoke performs the one-way active -> revoked transition.
func (r *licenseRepository) Revoke(id string) error {
	result := r.db.Model(&models.License{}).
		Where("id = ? AND status = ?", id, models.LICENSE_STATUS_ACTIVE).
		Update("status", models.LICENSE_STATUS_REVOKED)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of license records
func (r *licenseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.License{}).Count(&count).Error
	return count, err
}
