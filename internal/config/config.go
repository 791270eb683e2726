package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// HTTPTimeout bounds each outbound forecast request. The upstream API
	// itself sets no deadline; this is deliberate.
	HTTPTimeout time.Duration

	// CacheTTL is the memo window for the fetched dataset.
	CacheTTL time.Duration

	// RefreshInterval drives the background cache refresher; 0 disables it.
	RefreshInterval time.Duration

	// ForecastBaseURL overrides the Open-Meteo endpoint (tests only).
	ForecastBaseURL string

	// Timezone is the civil timezone all hourly timestamps are requested
	// and parsed in.
	Timezone string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.ForecastBaseURL = os.Getenv("FORECAST_BASE_URL")
	cfg.Timezone = getenvDefault("FORECAST_TIMEZONE", "Asia/Tokyo")

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	ttl, err := getenvDuration("CACHE_TTL", "10m")
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = ttl

	refresh, err := getenvDuration("REFRESH_INTERVAL", "10m")
	if err != nil {
		return nil, err
	}
	cfg.RefreshInterval = refresh

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
