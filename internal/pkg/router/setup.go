package router

import (
	"github.com/gofiber/fiber/v2"
)

type Router interface {
	InstallRouter(app *fiber.App, deps *Deps)
}

// InstallRouter registers the public delivery surface first, then the API
// routes that share its components.
func InstallRouter(app *fiber.App, deps *Deps) {
	setup(app, deps, NewHttpRouter(), NewApiRouter())
}

func setup(app *fiber.App, deps *Deps, routers ...Router) {
	for _, r := range routers {
		r.InstallRouter(app, deps)
	}
}
