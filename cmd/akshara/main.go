package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/akshara-fonts/akshara/app/repository"
	"github.com/akshara-fonts/akshara/internal/pkg/cache"
	"github.com/akshara-fonts/akshara/internal/pkg/database"
	"github.com/akshara-fonts/akshara/internal/pkg/env"
	"github.com/akshara-fonts/akshara/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	if env.GetEnv("CACHE_HOST", "") != "" {
		cache.SetupCache()
	}

	repository.InitializeFactory(database.GetDB())
	repos := repository.GetGlobalRepositories()
	if err := database.SeedCatalog(repos); err != nil {
		log.Fatalf("catalog seed failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "Akshara Font Service",
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "admin"),
		},
	}), monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	deps := router.NewDeps()
	router.InstallRouter(app, deps)

	// Drain pending serve counters into the catalog on an interval.
	if deps.Counters != nil {
		deps.Counters.StartFlusher(deps.Repos.Font, 5*time.Minute, make(chan struct{}))
	}

	return app
}
