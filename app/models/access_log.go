package models

import "time"

const (
	ACCESS_KIND_WEBFONT  = "webfont"
	ACCESS_KIND_DOWNLOAD = "download"

	// LicenseRefFree marks accesses to free/OFL assets that need no
	// license record.
	LicenseRefFree = "free-tier"

	// LicenseRefNone marks denied accesses with no matching license.
	LicenseRefNone = "unlicensed"
)

// AccessLogEntry is an append-only audit record for a single delivery
// decision. Entries are never mutated or deleted by the service; retention
// is an operational concern.
type AccessLogEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Kind      string    `gorm:"type:varchar(20);index" json:"kind"`
	LicenseID string    `gorm:"type:varchar(64);index" json:"license_id"`
	FontID    string    `gorm:"type:varchar(64);index" json:"font_id"`
	IP        string    `gorm:"type:varchar(45)" json:"ip"`
	Origin    string    `gorm:"type:varchar(255)" json:"origin,omitempty"`
	UserAgent string    `gorm:"type:varchar(255)" json:"user_agent,omitempty"`
	Allowed   bool      `gorm:"type:boolean" json:"allowed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
