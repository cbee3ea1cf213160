package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/akshara-fonts/akshara/internal/pkg/aiinsight"
	"github.com/akshara-fonts/akshara/internal/pkg/usercontext"
)

// AIController proxies pairing insight requests to the generative text
// service.
type AIController struct {
	client *aiinsight.Client
}

// NewAIController creates a new AI insight controller
func NewAIController(client *aiinsight.Client) *AIController {
	return &AIController{client: client}
}

type insightRequest struct {
	HeadlineFont string `json:"headlineFont" validate:"required,max=150"`
	BodyFont     string `json:"bodyFont" validate:"required,max=150"`
}

var insightValidate = validator.New()

// HandleInsights returns a short advisory text for a font pairing. The
// upstream service is non-essential: its failures degrade to a canned
// sentence, never to an error.
func (ac *AIController) HandleInsights(c *fiber.Ctx) error {
	user := usercontext.GetUserContext(c)
	if !user.IsResolved {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated", "message": "Missing or invalid identity"})
	}

	var req insightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Malformed request body"})
	}
	if err := insightValidate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Missing font parameters"})
	}

	text, err := ac.client.GetInsight(c.Context(), user.UserID, req.HeadlineFont, req.BodyFont)
	if err != nil {
		if errors.Is(err, aiinsight.ErrRateLimited) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate_limited", "message": "Insight request ceiling exceeded, retry later"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Insight request failed"})
	}

	return c.JSON(fiber.Map{"text": text})
}
