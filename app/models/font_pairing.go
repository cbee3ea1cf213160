package models

import "time"

// FontPairing is a curated headline/body combination shown on the pairings
// page. Pure catalog data, no per-user state.
type FontPairing struct {
	ID             string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	HeadlineFontID string    `gorm:"type:varchar(64);index" json:"headlineFontId"`
	BodyFontID     string    `gorm:"type:varchar(64);index" json:"bodyFontId"`
	Description    string    `gorm:"type:text" json:"description"`
	Tags           []string  `gorm:"serializer:json;type:text" json:"tags"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"-"`
}
