package repository

import (
	"github.com/akshara-fonts/akshara/app/models"
	"gorm.io/gorm"
)

// accessLogRepository implements the AccessLogRepository interface
type accessLogRepository struct {
	db *gorm.DB
}

// NewAccessLogRepository creates a new access log repository instance
func NewAccessLogRepository(db *gorm.DB) AccessLogRepository {
	return &accessLogRepository{db: db}
}

// Append writes one audit entry. Entries are append-only; there is no
// update or delete path.
func (r *accessLogRepository) Append(entry *models.AccessLogEntry) error {
	return r.db.Create(entry).Error
}

// ListByFont returns the newest audit entries for a font.
func (r *accessLogRepository) ListByFont(fontID string, limit int) ([]models.AccessLogEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	var entries []models.AccessLogEntry
	err := r.db.Where("font_id = ?", fontID).Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

// CountByLicense returns how many accesses were recorded against a license.
func (r *accessLogRepository) CountByLicense(licenseID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.AccessLogEntry{}).Where("license_id = ?", licenseID).Count(&count).Error
	return count, err
}
