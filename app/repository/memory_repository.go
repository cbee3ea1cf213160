package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/akshara-fonts/akshara/app/models"
)

// NewMemoryRepositories returns repositories backed by in-process maps.
// Used by tests and as a fallback when no database is configured; state
// does not survive restarts.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		User:        NewMemoryUserRepository(),
		Font:        NewMemoryFontRepository(),
		License:     NewMemoryLicenseRepository(),
		AccessLog:   NewMemoryAccessLogRepository(),
		FontPairing: NewMemoryFontPairingRepository(),
	}
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryUserRepository creates an in-memory user repository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]models.User)}
}

func (r *memoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

type memoryFontRepository struct {
	mu    sync.RWMutex
	fonts map[string]models.Font
}

// NewMemoryFontRepository creates an in-memory font repository.
func NewMemoryFontRepository() FontRepository {
	return &memoryFontRepository{fonts: make(map[string]models.Font)}
}

func (r *memoryFontRepository) Create(font *models.Font) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fonts[font.ID] = *font
	return nil
}

func (r *memoryFontRepository) GetByID(id string) (*models.Font, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	font, ok := r.fonts[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrNotFound
	}
	return &font, nil
}

func (r *memoryFontRepository) GetAll() ([]models.Font, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fonts := make([]models.Font, 0, len(r.fonts))
	for _, f := range r.fonts {
		fonts = append(fonts, f)
	}
	sort.Slice(fonts, func(i, j int) bool { return fonts[i].Name < fonts[j].Name })
	return fonts, nil
}

func (r *memoryFontRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.fonts)), nil
}

func (r *memoryFontRepository) AddCounts(id string, webfontDelta, downloadDelta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	font, ok := r.fonts[id]
	if !ok {
		return ErrNotFound
	}
	font.WebfontCount += webfontDelta
	font.DownloadCount += downloadDelta
	r.fonts[id] = font
	return nil
}

type memoryLicenseRepository struct {
	mu       sync.RWMutex
	licenses map[string]models.License
}

// NewMemoryLicenseRepository creates an in-memory license repository.
func NewMemoryLicenseRepository() LicenseRepository {
	return &memoryLicenseRepository{licenses: make(map[string]models.License)}
}

func (r *memoryLicenseRepository) Create(license *models.License) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.licenses[license.ID] = *license
	return nil
}

func (r *memoryLicenseRepository) GetByID(id string) (*models.License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	license, ok := r.licenses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &license, nil
}

func (r *memoryLicenseRepository) GetByUserID(userID string) ([]models.License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var licenses []models.License
	for _, l := range r.licenses {
		if l.UserID == userID {
			licenses = append(licenses, l)
		}
	}
	sort.Slice(licenses, func(i, j int) bool { return licenses[i].IssuedAt.After(licenses[j].IssuedAt) })
	return licenses, nil
}

func (r *memoryLicenseRepository) FindActive(userID, fontID string) (*models.License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.licenses {
		if l.UserID == userID && l.FontID == fontID && l.IsActive() {
			lic := l
			return &lic, nil
		}
	}
	return nil, nil
}

func (r *memoryLicenseRepository) FindActiveForDomain(fontID, domain string) (*models.License, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.licenses {
		if l.FontID == fontID && l.IsActive() && l.AuthorizesDomain(domain) {
			lic := l
			return &lic, nil
		}
	}
	return nil, nil
}

func (r *memoryLicenseRepository) Revoke(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	license, ok := r.licenses[id]
	if !ok || !license.IsActive() {
		return ErrNotFound
	}
	license.Status = models.LICENSE_STATUS_REVOKED
	r.licenses[id] = license
	return nil
}

func (r *memoryLicenseRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.licenses)), nil
}

type memoryAccessLogRepository struct {
	mu      sync.RWMutex
	entries []models.AccessLogEntry
}

// NewMemoryAccessLogRepository creates an in-memory access log repository.
func NewMemoryAccessLogRepository() AccessLogRepository {
	return &memoryAccessLogRepository{}
}

func (r *memoryAccessLogRepository) Append(entry *models.AccessLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = uint(len(r.entries) + 1)
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memoryAccessLogRepository) ListByFont(fontID string, limit int) ([]models.AccessLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 {
		limit = 100
	}
	var entries []models.AccessLogEntry
	for i := len(r.entries) - 1; i >= 0 && len(entries) < limit; i-- {
		if r.entries[i].FontID == fontID {
			entries = append(entries, r.entries[i])
		}
	}
	return entries, nil
}

func (r *memoryAccessLogRepository) CountByLicense(licenseID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, e := range r.entries {
		if e.LicenseID == licenseID {
			count++
		}
	}
	return count, nil
}

type memoryFontPairingRepository struct {
	mu       sync.RWMutex
	pairings map[string]models.FontPairing
}

// NewMemoryFontPairingRepository creates an in-memory pairing repository.
func NewMemoryFontPairingRepository() FontPairingRepository {
	return &memoryFontPairingRepository{pairings: make(map[string]models.FontPairing)}
}

func (r *memoryFontPairingRepository) Create(pairing *models.FontPairing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pairings[pairing.ID] = *pairing
	return nil
}

func (r *memoryFontPairingRepository) GetAll() ([]models.FontPairing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pairings := make([]models.FontPairing, 0, len(r.pairings))
	for _, p := range r.pairings {
		pairings = append(pairings, p)
	}
	sort.Slice(pairings, func(i, j int) bool { return pairings[i].ID < pairings[j].ID })
	return pairings, nil
}

func (r *memoryFontPairingRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.pairings)), nil
}
