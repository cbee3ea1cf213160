package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/akshara-fonts/akshara/internal/pkg/licensing"
	"github.com/akshara-fonts/akshara/internal/pkg/usercontext"
)

// LicenseController handles license issuance requests.
type LicenseController struct {
	issuer *licensing.Issuer
}

// NewLicenseController creates a new license controller
func NewLicenseController(issuer *licensing.Issuer) *LicenseController {
	return &LicenseController{issuer: issuer}
}

type createLicenseRequest struct {
	UserID      string `json:"userId"`
	FontID      string `json:"fontId" validate:"required"`
	LicenseType string `json:"licenseType" validate:"required"`
}

var licenseValidate = validator.New()

// HandleCreateLicense issues (or restores) the license for the
// authenticated user and the requested font. Idempotent: retrying a
// checkout never creates a second license.
func (lc *LicenseController) HandleCreateLicense(c *fiber.Ctx) error {
	user := usercontext.GetUserContext(c)
	if !user.IsResolved {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated", "message": "Missing or invalid identity"})
	}

	var req createLicenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Malformed request body"})
	}
	if err := licenseValidate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "fontId and licenseType are required"})
	}
	// The body may restate the caller's id but cannot act for anyone else.
	if req.UserID != "" && req.UserID != user.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden", "message": "Cannot issue a license for another user"})
	}

	license, restored, err := lc.issuer.Issue(c.Context(), user.UserID, req.FontID, req.LicenseType)
	if err != nil {
		switch {
		case errors.Is(err, licensing.ErrInvalidLicenseType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_license_type", "message": "licenseType must be OFL, Commercial or Subscription"})
		case errors.Is(err, licensing.ErrUnknownFont):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown_font", "message": "Font does not exist"})
		case errors.Is(err, licensing.ErrUnknownUser):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unknown_identity", "message": "Identity does not resolve to a known user"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "License issuance failed"})
	}

	return c.JSON(fiber.Map{
		"license":  license,
		"restored": restored,
	})
}
