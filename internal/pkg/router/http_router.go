package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akshara-fonts/akshara/app/controllers"
)

type HttpRouter struct {
}

// InstallRouter registers the anonymous delivery surface: webfont serving
// and download-token redemption. Neither carries identity; webfonts are
// origin-gated, redemptions token-gated.
func (h HttpRouter) InstallRouter(app *fiber.App, deps *Deps) {
	webfonts := controllers.NewWebfontController(deps.Gatekeeper, deps.FontStore)
	downloads := controllers.NewDeliveryController(deps.Gatekeeper)

	app.Get("/webfonts/:fontId/:weight", webfonts.HandleServeWebfont)
	app.Get("/download-execute/:fontId/:token", downloads.HandleExecuteDownload)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
