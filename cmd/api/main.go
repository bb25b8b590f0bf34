package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"personapi/internal/config"
	"personapi/internal/database"
	"personapi/internal/database/migration"
	handlers "personapi/internal/http/handler"
	"personapi/internal/http/middleware"
	"personapi/internal/otel"
	"personapi/internal/repository"
	"personapi/internal/repository/memory"
	"personapi/internal/repository/postgres"
	"personapi/internal/service"
	"personapi/internal/storage"
)

// @title Person API
// @version 1.0
// @description Person CRUD demo with declarative request validation.
// @BasePath /
func main() {
	ctx := context.Background()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	deps := handlers.Deps{Metrics: prometheus.DefaultGatherer}

	// The roster lives in PostgreSQL when DB_HOST is set, in memory otherwise.
	var persons repository.PersonRepository
	if cfg.Database.Enabled() {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if cfg.Database.AutoMigrate {
			if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host, cfg.PersonIDs); err != nil {
				log.Fatalf("failed to migrate database: %v", err)
			}
		}
		persons = postgres.NewPersonPostgres(db)
		deps.DB = db
	} else {
		persons = memory.NewPersonMemory(cfg.PersonIDs...)
	}

	// Uploaded images are only measured unless object storage is configured.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}

	deps.Persons = service.NewPersonService(persons)
	deps.Images = service.NewImageService(objStore)

	metrics, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, deps)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
