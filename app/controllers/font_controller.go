package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akshara-fonts/akshara/app/repository"
)

// FontController serves the public catalog endpoints.
type FontController struct {
	fonts    repository.FontRepository
	pairings repository.FontPairingRepository
}

// NewFontController creates a new font controller with repositories
func NewFontController(fonts repository.FontRepository, pairings repository.FontPairingRepository) *FontController {
	return &FontController{fonts: fonts, pairings: pairings}
}

// HandleGetFonts returns the full catalog. No auth, no pagination; the
// catalog is small and the response is cacheable.
func (fc *FontController) HandleGetFonts(c *fiber.Ctx) error {
	fonts, err := fc.fonts.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Could not load catalog"})
	}
	return c.JSON(fonts)
}

// HandleGetPairings returns the curated pairing catalog.
func (fc *FontController) HandleGetPairings(c *fiber.Ctx) error {
	pairings, err := fc.pairings.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Could not load pairings"})
	}
	return c.JSON(pairings)
}
