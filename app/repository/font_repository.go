package repository

import (
	"errors"
	"strings"

	"github.com/akshara-fonts/akshara/app/models"
	"gorm.io/gorm"
)

// fontRepository implements the FontRepository interface
type fontRepository struct {
	db *gorm.DB
}

// NewFontRepository creates a new font repository instance
func NewFontRepository(db *gorm.DB) FontRepository {
	return &fontRepository{db: db}
}

// Create inserts a catalog entry.
func (r *fontRepository) Create(font *models.Font) error {
	return r.db.Create(font).Error
}

// GetByID retrieves a font by its catalog identifier.
func (r *fontRepository) GetByID(id string) (*models.Font, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}
	var font models.Font
	err := r.db.Where("id = ?", id).First(&font).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &font, nil
}

// GetAll returns the full catalog ordered by name.
func (r *fontRepository) GetAll() ([]models.Font, error) {
	var fonts []models.Font
	err := r.db.Order("name").Find(&fonts).Error
	return fonts, err
}

// Count returns the total number of catalog entries
func (r *fontRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Font{}).Count(&count).Error
	return count, err
}

// AddCounts applies batched serve/download counter increments to a font row.
func (r *fontRepository) AddCounts(id string, webfontDelta, downloadDelta int64) error {
	if webfontDelta == 0 && downloadDelta == 0 {
		return nil
	}
	return r.db.Model(&models.Font{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"webfont_count":  gorm.Expr("webfont_count + ?", webfontDelta),
			"download_count": gorm.Expr("download_count + ?", downloadDelta),
		}).Error
}
