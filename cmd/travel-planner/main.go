package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/i474232898/travel-planner/internal/api/http"
	"github.com/i474232898/travel-planner/internal/config"
	"github.com/i474232898/travel-planner/internal/scheduler"
	"github.com/i474232898/travel-planner/internal/trip"
	"github.com/i474232898/travel-planner/internal/trip/providers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Provider clients, each behind its own circuit breaker.
	geocoder := providers.NewGeoNamesClient(httpClient, cfg.GeoNamesUsername, cfg.GeoNamesBaseURL)
	forecasts := providers.NewWeatherbitClient(httpClient, cfg.WeatherbitAPIKey, cfg.WeatherbitBaseURL)
	images := providers.NewPixabayClient(httpClient, cfg.PixabayAPIKey, cfg.PixabayBaseURL)

	policies := trip.DefaultPolicies()
	policies.Image = cfg.ImagePolicy

	// Core enrichment pipeline.
	pipeline := trip.NewPipeline(geocoder, forecasts, images, policies)

	// Watchdog that periodically probes the providers.
	watchdog := scheduler.New([]scheduler.Pinger{geocoder, forecasts, images}, cfg.HealthCheckInterval)
	if err := watchdog.Start(); err != nil {
		log.Fatalf("failed to start watchdog: %v", err)
	}
	defer watchdog.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "travel-planner",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "travel-planner",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, pipeline)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
