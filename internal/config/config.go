package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/travel-planner/internal/trip"
)

type AppConfig struct {
	// Provider credentials. Absence is not a startup error: the matching
	// provider call fails at request time instead.
	GeoNamesUsername string
	WeatherbitAPIKey string
	PixabayAPIKey    string

	// Provider endpoint overrides; empty selects each client's default.
	GeoNamesBaseURL   string
	WeatherbitBaseURL string
	PixabayBaseURL    string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	// HealthCheckInterval controls the provider watchdog; 0 disables it.
	HealthCheckInterval time.Duration

	// ImagePolicy decides whether a failed image lookup aborts the
	// enrichment ("required", the historical behavior) or degrades to a
	// missing image ("optional").
	ImagePolicy trip.StepPolicy

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.GeoNamesUsername = os.Getenv("GEONAMES_USERNAME")
	cfg.WeatherbitAPIKey = os.Getenv("WEATHERBIT_API_KEY")
	cfg.PixabayAPIKey = os.Getenv("PIXABAY_API_KEY")

	for name, v := range map[string]string{
		"GEONAMES_USERNAME":  cfg.GeoNamesUsername,
		"WEATHERBIT_API_KEY": cfg.WeatherbitAPIKey,
		"PIXABAY_API_KEY":    cfg.PixabayAPIKey,
	} {
		if v == "" {
			log.Printf("WARN: %s is not set; calls to that provider will fail", name)
		}
	}

	cfg.GeoNamesBaseURL = os.Getenv("GEONAMES_BASE_URL")
	cfg.WeatherbitBaseURL = os.Getenv("WEATHERBIT_BASE_URL")
	cfg.PixabayBaseURL = os.Getenv("PIXABAY_BASE_URL")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Watchdog interval: default disabled so idle servers spend no quota.
	intervalStr := getenvDefault("HEALTHCHECK_INTERVAL", "0")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HEALTHCHECK_INTERVAL: %w", err)
	}
	cfg.HealthCheckInterval = interval

	policy, err := loadImagePolicy()
	if err != nil {
		return nil, err
	}
	cfg.ImagePolicy = policy

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func loadImagePolicy() (trip.StepPolicy, error) {
	switch v := getenvDefault("TRIP_IMAGE_POLICY", string(trip.PolicyRequired)); v {
	case string(trip.PolicyRequired):
		return trip.PolicyRequired, nil
	case string(trip.PolicyOptional):
		return trip.PolicyOptional, nil
	default:
		return "", fmt.Errorf("invalid TRIP_IMAGE_POLICY %q: must be required or optional", v)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
