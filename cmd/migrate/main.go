package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-lightbnb/config"
	pginfra "github.com/oksasatya/go-lightbnb/internal/infrastructure/postgres"
	"github.com/oksasatya/go-lightbnb/pkg/helpers"
)

// usage: migrate [-down]
func main() {
	down := flag.Bool("down", false, "roll back every migration instead of applying them")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)

	if err := pginfra.Migrate(cfg.PostgresDSN(), cfg.MigrationsDir, !*down, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}
