package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultUSGSBaseURL       = "https://waterservices.usgs.gov/nwis/iv/"
	defaultForecastBaseURL   = "https://api.open-meteo.com/v1/forecast"
	defaultAirQualityBaseURL = "https://air-quality-api.open-meteo.com/v1/air-quality"
	defaultRequestTimeout    = 8 * time.Second
	defaultLookbackDays      = 3
	defaultProjectionDays    = 10
	defaultSessionTTL        = 24 * time.Hour
)

// Config holds environment-driven settings for the API service.
type Config struct {
	DatabaseURL       string
	Port              int
	USGSBaseURL       string
	ForecastBaseURL   string
	AirQualityBaseURL string
	RequestTimeout    time.Duration
	LookbackDays      int
	ProjectionDays    int
	SessionTTL        time.Duration
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:              8080,
		USGSBaseURL:       defaultUSGSBaseURL,
		ForecastBaseURL:   defaultForecastBaseURL,
		AirQualityBaseURL: defaultAirQualityBaseURL,
		RequestTimeout:    defaultRequestTimeout,
		LookbackDays:      defaultLookbackDays,
		ProjectionDays:    defaultProjectionDays,
		SessionTTL:        defaultSessionTTL,
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is required")
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	}

	if v := strings.TrimSpace(os.Getenv("USGS_BASE_URL")); v != "" {
		cfg.USGSBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("FORECAST_BASE_URL")); v != "" {
		cfg.ForecastBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("AIR_QUALITY_BASE_URL")); v != "" {
		cfg.AirQualityBaseURL = v
	}

	if v := strings.TrimSpace(os.Getenv("UPSTREAM_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %s", v)
		}
		cfg.RequestTimeout = d
	}

	if v := os.Getenv("RIVER_LOOKBACK_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.LookbackDays = days
		} else {
			return cfg, fmt.Errorf("invalid RIVER_LOOKBACK_DAYS: %s", v)
		}
	}

	if v := os.Getenv("RIVER_PROJECTION_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.ProjectionDays = days
		} else {
			return cfg, fmt.Errorf("invalid RIVER_PROJECTION_DAYS: %s", v)
		}
	}

	if v := strings.TrimSpace(os.Getenv("SESSION_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid SESSION_TTL: %s", v)
		}
		cfg.SessionTTL = d
	}

	return cfg, nil
}

// Lookback returns the history window as a duration.
func (c Config) Lookback() time.Duration {
	return time.Duration(c.LookbackDays) * 24 * time.Hour
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
