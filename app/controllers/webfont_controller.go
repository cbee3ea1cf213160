package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/akshara-fonts/akshara/internal/pkg/delivery"
	"github.com/akshara-fonts/akshara/internal/pkg/fontstore"
)

// WebfontController serves origin-gated @font-face binaries.
type WebfontController struct {
	gate  *delivery.Gatekeeper
	store *fontstore.Store
}

// NewWebfontController creates a new webfont controller
func NewWebfontController(gate *delivery.Gatekeeper, store *fontstore.Store) *WebfontController {
	return &WebfontController{gate: gate, store: store}
}

// HandleServeWebfont streams a single weight for embedding. Denials are
// silent: an empty 403 with no body, so unauthorized callers cannot probe
// which domains a license covers.
func (wc *WebfontController) HandleServeWebfont(c *fiber.Ctx) error {
	fontID := c.Params("fontId")
	weight, err := strconv.Atoi(c.Params("weight"))
	if err != nil {
		return c.SendStatus(fiber.StatusForbidden)
	}

	origin := requestOrigin(c)
	if !wc.gate.AuthorizeWebfont(fontID, origin, GetClientIP(c)) {
		return c.SendStatus(fiber.StatusForbidden)
	}

	path, err := wc.store.WebfontPath(fontID, weight)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "asset_not_found", "message": "Requested weight is not available"})
	}

	if origin != "" {
		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		c.Set(fiber.HeaderVary, fiber.HeaderOrigin)
	}
	c.Set(fiber.HeaderContentType, "font/woff2")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.SendFile(path)
}
