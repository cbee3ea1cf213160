package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/akshara-fonts/akshara/internal/pkg/delivery"
	"github.com/akshara-fonts/akshara/internal/pkg/usercontext"
)

// DeliveryController handles the two-phase signed-download channel.
type DeliveryController struct {
	gate *delivery.Gatekeeper
}

// NewDeliveryController creates a new delivery controller
func NewDeliveryController(gate *delivery.Gatekeeper) *DeliveryController {
	return &DeliveryController{gate: gate}
}

// HandleRequestDelivery is phase one: returns a short-lived signed URL for
// the font binary. Identity is required; paid fonts additionally need an
// active license.
func (dc *DeliveryController) HandleRequestDelivery(c *fiber.Ctx) error {
	user := usercontext.GetUserContext(c)
	if !user.IsResolved {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated", "message": "Missing or invalid identity"})
	}

	grant, err := dc.gate.RequestDelivery(user.UserID, c.Params("fontId"), GetClientIP(c), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrUnknownIdentity):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unknown_identity", "message": "Identity does not resolve to a known user"})
		case errors.Is(err, delivery.ErrAssetNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "asset_not_found", "message": "Font does not exist"})
		case errors.Is(err, delivery.ErrLicenseRequired):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "license_required", "message": "An active license is required to download this font"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Delivery request failed"})
	}

	return c.JSON(grant)
}

// HandleExecuteDownload is phase two: exchanges a single-use token for the
// binary stream. Stateless from the client's view, validated against the
// server-side token registry.
func (dc *DeliveryController) HandleExecuteDownload(c *fiber.Ctx) error {
	path, filename, err := dc.gate.ExecuteDownload(c.Params("fontId"), c.Params("token"))
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrTokenExpired):
			return c.Status(fiber.StatusGone).JSON(fiber.Map{"error": "token_expired", "message": "Download token has expired"})
		case errors.Is(err, delivery.ErrTokenAlreadyUsed):
			return c.Status(fiber.StatusGone).JSON(fiber.Map{"error": "token_already_used", "message": "Download token was already redeemed"})
		case errors.Is(err, delivery.ErrTokenUnknown):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "token_invalid", "message": "Download token is not valid"})
		case errors.Is(err, delivery.ErrAssetNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "asset_not_found", "message": "Font does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Download failed"})
	}

	return c.Download(path, filename)
}
