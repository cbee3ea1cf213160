package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	SCRIPT_HINDI   = "Hindi"
	SCRIPT_ENGLISH = "English"
	SCRIPT_MIXED   = "Mixed"

	CATEGORY_SERIF   = "Serif"
	CATEGORY_SANS    = "Sans Serif"
	CATEGORY_DISPLAY = "Display"
	CATEGORY_UI      = "UI"

	LICENSE_TYPE_OFL          = "OFL"
	LICENSE_TYPE_COMMERCIAL   = "Commercial"
	LICENSE_TYPE_SUBSCRIPTION = "Subscription"
)

// Font is an immutable catalog entry. Price is stored in the smallest
// currency unit; OFL fonts always carry a price of zero.
type Font struct {
	ID            string    `gorm:"primaryKey;type:varchar(64)" json:"id" validate:"required,min=2,max=64"`
	Name          string    `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Family        string    `gorm:"type:varchar(255)" json:"family" validate:"required,max=255"`
	Scripts       []string  `gorm:"serializer:json;type:text" json:"scripts" validate:"required,min=1,dive,oneof=Hindi English Mixed"`
	Category      string    `gorm:"type:varchar(50)" json:"category" validate:"required,oneof=Serif 'Sans Serif' Display UI"`
	Weights       []int     `gorm:"serializer:json;type:text" json:"weights" validate:"required,min=1"`
	LicenseType   string    `gorm:"type:varchar(50)" json:"licenseType" validate:"required,oneof=OFL Commercial Subscription"`
	Price         int       `gorm:"type:int;default:0" json:"price" validate:"min=0"`
	Description   string    `gorm:"type:text" json:"description" validate:"max=1000"`
	Tone          []string  `gorm:"serializer:json;type:text" json:"tone"`
	WebfontCount  int64     `gorm:"type:bigint;default:0" json:"-"`
	DownloadCount int64     `gorm:"type:bigint;default:0" json:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"-"`
}

// ErrOFLPriced is returned when an OFL font carries a non-zero price.
var ErrOFLPriced = errors.New("OFL fonts must have a price of zero")

func (f *Font) Validate() error {
	v := validator.New()
	if err := v.Struct(f); err != nil {
		return err
	}
	if f.LicenseType == LICENSE_TYPE_OFL && f.Price != 0 {
		return ErrOFLPriced
	}
	return nil
}

// IsFree reports whether the font can be delivered without a license record.
func (f *Font) IsFree() bool {
	return f.LicenseType == LICENSE_TYPE_OFL || f.Price == 0
}

// HasWeight reports whether the given weight is part of the font family.
func (f *Font) HasWeight(weight int) bool {
	for _, w := range f.Weights {
		if w == weight {
			return true
		}
	}
	return false
}

// IsValidLicenseType reports whether t is one of the enumerated license kinds.
func IsValidLicenseType(t string) bool {
	switch t {
	case LICENSE_TYPE_OFL, LICENSE_TYPE_COMMERCIAL, LICENSE_TYPE_SUBSCRIPTION:
		return true
	}
	return false
}
