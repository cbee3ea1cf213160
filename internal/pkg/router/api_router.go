package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akshara-fonts/akshara/app/controllers"
	"github.com/akshara-fonts/akshara/internal/pkg/middleware"
)

type ApiRouter struct {
}

// InstallRouter registers the JSON API. The whole group sits behind the
// per-IP limiter; issuance, delivery grants and AI insights additionally
// require a resolved bearer identity.
func (h ApiRouter) InstallRouter(app *fiber.App, deps *Deps) {
	fonts := controllers.NewFontController(deps.Repos.Font, deps.Repos.FontPairing)
	licenses := controllers.NewLicenseController(deps.Issuer)
	deliveries := controllers.NewDeliveryController(deps.Gatekeeper)
	insights := controllers.NewAIController(deps.Insights)

	api := app.Group("/api", middleware.NewRateLimiter(deps.LimiterStorage))
	api.Get("/fonts", fonts.HandleGetFonts)
	api.Get("/pairings", fonts.HandleGetPairings)

	identity := middleware.RequireIdentity(deps.Repos.User)
	api.Post("/license", identity, licenses.HandleCreateLicense)
	api.Get("/delivery/:fontId", identity, deliveries.HandleRequestDelivery)
	api.Post("/ai/insights", identity, insights.HandleInsights)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
