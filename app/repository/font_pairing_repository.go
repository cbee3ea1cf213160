package repository

import (
	"github.com/akshara-fonts/akshara/app/models"
	"gorm.io/gorm"
)

// fontPairingRepository implements the FontPairingRepository interface
type fontPairingRepository struct {
	db *gorm.DB
}

// NewFontPairingRepository creates a new font pairing repository instance
func NewFontPairingRepository(db *gorm.DB) FontPairingRepository {
	return &fontPairingRepository{db: db}
}

func (r *fontPairingRepository) Create(pairing *models.FontPairing) error {
	return r.db.Create(pairing).Error
}

func (r *fontPairingRepository) GetAll() ([]models.FontPairing, error) {
	var pairings []models.FontPairing
	err := r.db.Order("id").Find(&pairings).Error
	return pairings, err
}

func (r *fontPairingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.FontPairing{}).Count(&count).Error
	return count, err
}
