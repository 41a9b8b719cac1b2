package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	} else {
		logrus.Infof("loaded environment variables from .env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	return cfg, nil
}

// Validate checks ranges and cross-field constraints.
func (c *Config) Validate() error {
	if c.MetricsPort < 1 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid METRICS_PORT: %d (must be 1-65535)", c.MetricsPort)
	}

	if !strings.HasPrefix(c.MetricsEndpoint, "/") {
		return fmt.Errorf("invalid METRICS_ENDPOINT: %q (must start with /)", c.MetricsEndpoint)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid LOG_FORMAT: %q (must be text or json)", c.LogFormat)
	}

	if c.TickInterval <= 0 {
		return fmt.Errorf("invalid TICK_INTERVAL: %s (must be positive)", c.TickInterval)
	}

	if c.SpawnInterval <= 0 {
		return fmt.Errorf("invalid SPAWN_INTERVAL: %s (must be positive)", c.SpawnInterval)
	}

	if c.DrinkTTL <= 0 {
		return fmt.Errorf("invalid DRINK_TTL: %s (must be positive)", c.DrinkTTL)
	}

	if c.BatchSize < 0 {
		return fmt.Errorf("invalid SPAWN_BATCH_SIZE: %d (must be non-negative)", c.BatchSize)
	}

	if c.CollectRadiusMeters < 0 {
		return fmt.Errorf("invalid COLLECT_RADIUS_METERS: %v (must be non-negative)", c.CollectRadiusMeters)
	}

	if c.BarCheckInRadiusMeters <= 0 {
		return fmt.Errorf("invalid BAR_CHECKIN_RADIUS_METERS: %v (must be positive)", c.BarCheckInRadiusMeters)
	}

	if c.LocationUpdatesPerSecond < 0 {
		return fmt.Errorf("invalid LOCATION_UPDATES_PER_SECOND: %v (must be non-negative)", c.LocationUpdatesPerSecond)
	}

	if c.LocationBurst < 1 {
		return fmt.Errorf("invalid LOCATION_BURST: %d (must be at least 1)", c.LocationBurst)
	}

	return nil
}

// ConfigureLogging applies the log level and format to the standard logrus logger.
func (c *Config) ConfigureLogging() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	logrus.SetLevel(level)

	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return nil
}
