package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/akshara-fonts/akshara/app/models"
	"github.com/akshara-fonts/akshara/app/repository"
	"github.com/akshara-fonts/akshara/internal/pkg/audit"
	"github.com/akshara-fonts/akshara/internal/pkg/fontstore"
	"github.com/akshara-fonts/akshara/internal/pkg/security"
)

var (
	ErrUnknownIdentity = errors.New("identity does not resolve to a user")
	ErrAssetNotFound   = errors.New("font asset not found")
	ErrLicenseRequired = errors.New("an active license is required")
)

// DownloadTokenTTL is how long a signed download URL stays redeemable.
const DownloadTokenTTL = 60 * time.Second

// Grant is the result of the first delivery phase: a short-lived signed URL
// the client exchanges for the binary.
type Grant struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
	Filename  string    `json:"filename"`
}

// Gatekeeper decides whether a font asset may be served, on two channels:
// anonymous origin-gated webfont serving and identity-gated signed
// downloads.
type Gatekeeper struct {
	users    repository.UserRepository
	fonts    repository.FontRepository
	licenses repository.LicenseRepository
	registry *TokenRegistry
	store    *fontstore.Store
	auditor  *audit.Logger

	baseURL     string
	tokenSecret string
	tokenTTL    time.Duration
}

// NewGatekeeper wires the delivery gatekeeper. baseURL is the public origin
// embedded in signed download URLs.
func NewGatekeeper(users repository.UserRepository, fonts repository.FontRepository, licenses repository.LicenseRepository, registry *TokenRegistry, store *fontstore.Store, auditor *audit.Logger, baseURL, tokenSecret string) *Gatekeeper {
	return &Gatekeeper{
		users:       users,
		fonts:       fonts,
		licenses:    licenses,
		registry:    registry,
		store:       store,
		auditor:     auditor,
		baseURL:     strings.TrimRight(baseURL, "/"),
		tokenSecret: tokenSecret,
		tokenTTL:    DownloadTokenTTL,
	}
}

// AuthorizeWebfont decides the anonymous webfont channel. OFL fonts are
// always served; everything else needs an active license covering the
// request origin. The decision is audited either way; the caller must not
// disclose a denial reason.
func (g *Gatekeeper) AuthorizeWebfont(fontID, origin, ip string) bool {
	domain := NormalizeOrigin(origin)

	font, err := g.fonts.GetByID(fontID)
	if err != nil {
		g.auditor.Record(models.ACCESS_KIND_WEBFONT, models.LicenseRefNone, fontID, audit.Context{
			IP: ip, Origin: domain, Allowed: false,
		})
		return false
	}

	allowed := false
	licenseRef := models.LicenseRefNone
	if font.LicenseType == models.LICENSE_TYPE_OFL {
		allowed = true
		licenseRef = models.LicenseRefFree
	} else {
		license, err := g.licenses.FindActiveForDomain(fontID, domain)
		if err != nil {
			log.Errorf("[Delivery] webfont license lookup failed for font %s: %v", fontID, err)
		}
		if license != nil {
			allowed = true
			licenseRef = license.ID
		}
	}

	g.auditor.Record(models.ACCESS_KIND_WEBFONT, licenseRef, fontID, audit.Context{
		IP: ip, Origin: domain, Allowed: allowed,
	})
	return allowed
}

// RequestDelivery is phase one of the signed-download channel: it verifies
// identity and entitlement, registers a single-use token and returns the
// redemption URL. The audit entry is written here, not deferred to the
// exchange.
func (g *Gatekeeper) RequestDelivery(userID, fontID, ip, userAgent string) (*Grant, error) {
	if _, err := g.users.GetByID(userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownIdentity
		}
		return nil, err
	}
	font, err := g.fonts.GetByID(fontID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	licenseRef := models.LicenseRefFree
	if font.Price > 0 {
		license, err := g.licenses.FindActive(userID, fontID)
		if err != nil {
			return nil, err
		}
		if license == nil {
			return nil, ErrLicenseRequired
		}
		licenseRef = license.ID
	}

	token, claims, err := security.GenerateDownloadToken(userID, fontID, licenseRef, g.tokenTTL, g.tokenSecret)
	if err != nil {
		return nil, err
	}
	expiresAt := time.Unix(claims.ExpiresAt, 0)
	g.registry.Register(claims.Nonce, userID, fontID, licenseRef, expiresAt)

	g.auditor.Record(models.ACCESS_KIND_DOWNLOAD, licenseRef, fontID, audit.Context{
		IP: ip, UserAgent: userAgent, Allowed: true,
	})

	return &Grant{
		URL:       fmt.Sprintf("%s/download-execute/%s/%s?license=%s", g.baseURL, fontID, token, licenseRef),
		ExpiresAt: expiresAt,
		Filename:  g.store.DownloadFilename(font),
	}, nil
}

// ExecuteDownload is phase two: it validates the signed token against the
// registry, consumes it exactly once and resolves the binary's path.
func (g *Gatekeeper) ExecuteDownload(fontID, token string) (path, filename string, err error) {
	claims, err := security.VerifyDownloadToken(token, g.tokenSecret)
	if err != nil {
		return "", "", ErrTokenUnknown
	}
	if claims.FontID != fontID {
		return "", "", ErrTokenUnknown
	}
	if err := g.registry.Consume(claims.Nonce); err != nil {
		return "", "", err
	}

	font, err := g.fonts.GetByID(fontID)
	if err != nil {
		return "", "", ErrAssetNotFound
	}
	path, err = g.store.DownloadPath(fontID)
	if err != nil {
		return "", "", ErrAssetNotFound
	}
	return path, g.store.DownloadFilename(font), nil
}

// NormalizeOrigin reduces an Origin/Referer header to a bare host for
// allowlist matching. Missing or unparseable values become "unknown",
// which matches no license.
func NormalizeOrigin(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return "unknown"
	}
	if idx := strings.Index(origin, "://"); idx >= 0 {
		origin = origin[idx+3:]
	}
	if idx := strings.IndexAny(origin, "/?#"); idx >= 0 {
		origin = origin[:idx]
	}
	origin = strings.TrimSpace(strings.ToLower(origin))
	if origin == "" {
		return "unknown"
	}
	return origin
}
