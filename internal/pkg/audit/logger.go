package audit

import (
	"github.com/gofiber/fiber/v2/log"

	"github.com/akshara-fonts/akshara/app/models"
	"github.com/akshara-fonts/akshara/app/repository"
)

// Context carries the request details recorded alongside a delivery
// decision. Webfont accesses carry Origin, downloads carry UserAgent.
type Context struct {
	IP        string
	Origin    string
	UserAgent string
	Allowed   bool
}

// Logger appends compliance audit entries. Record never returns an error:
// an authorization decision must not depend on the audit trail being
// writable, so failures are logged server-side and swallowed.
type Logger struct {
	logs     repository.AccessLogRepository
	counters *Counter
}

// NewLogger creates an audit logger. counters may be nil, in which case
// per-font serve counters are skipped.
func NewLogger(logs repository.AccessLogRepository, counters *Counter) *Logger {
	return &Logger{logs: logs, counters: counters}
}

// Record appends one audit entry for a delivery decision. licenseID is the
// granted license id, or models.LicenseRefFree for free/OFL access.
func (l *Logger) Record(kind, licenseID, fontID string, ctx Context) {
	entry := &models.AccessLogEntry{
		Kind:      kind,
		LicenseID: licenseID,
		FontID:    fontID,
		IP:        ctx.IP,
		Origin:    ctx.Origin,
		UserAgent: ctx.UserAgent,
		Allowed:   ctx.Allowed,
	}
	if err := l.logs.Append(entry); err != nil {
		log.Errorf("[Audit] failed to append %s entry for font %s: %v", kind, fontID, err)
	}

	if l.counters == nil || !ctx.Allowed {
		return
	}
	var err error
	switch kind {
	case models.ACCESS_KIND_WEBFONT:
		err = l.counters.AddWebfontServe(fontID)
	case models.ACCESS_KIND_DOWNLOAD:
		err = l.counters.AddDownload(fontID)
	}
	if err != nil {
		log.Warnf("[Audit] counter increment failed for font %s: %v", fontID, err)
	}
}
