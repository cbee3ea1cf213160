package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetClientIP determines the actual client IP address considering proxies.
func GetClientIP(c *fiber.Ctx) string {
	// Cloudflare provides the original client IP in this header
	if cfIP := strings.TrimSpace(c.Get("CF-Connecting-IP")); cfIP != "" {
		return cfIP
	}
	if fwd := strings.TrimSpace(c.Get("X-Forwarded-For")); fwd != "" {
		// First entry is the originating client
		if idx := strings.Index(fwd, ","); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return fwd
	}
	return c.IP()
}

// requestOrigin reads the webfont channel's origin, falling back to the
// Referer for browsers that omit Origin on same-site font fetches.
func requestOrigin(c *fiber.Ctx) string {
	if origin := strings.TrimSpace(c.Get(fiber.HeaderOrigin)); origin != "" {
		return origin
	}
	return strings.TrimSpace(c.Get(fiber.HeaderReferer))
}
