package main

import (
	"log"

	"github.com/akshara-fonts/akshara/app/repository"
	"github.com/akshara-fonts/akshara/internal/pkg/database"
	"github.com/akshara-fonts/akshara/internal/pkg/env"
)

// Seeds the launch catalog and demo users into the configured database.
func main() {
	env.SetupEnvFile()
	database.SetupDatabase()
	if database.GetDB() == nil {
		log.Fatal("DB_HOST must be configured to seed a database")
	}

	repository.InitializeFactory(database.GetDB())
	if err := database.SeedCatalog(repository.GetGlobalRepositories()); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Print("Seed complete")
}
