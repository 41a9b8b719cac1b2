package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, uint64(5), cfg.RedisMaxRetries)
	assert.Equal(t, 8080, cfg.MetricsPort)
	assert.Equal(t, "/metrics", cfg.MetricsEndpoint)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, 60*time.Second, cfg.SpawnInterval)
	assert.Equal(t, 300*time.Second, cfg.DrinkTTL)
	assert.Equal(t, 3, cfg.BatchSize)
	assert.Zero(t, cfg.CollectRadiusMeters)
	assert.Equal(t, 75.0, cfg.BarCheckInRadiusMeters)
	assert.Equal(t, 1.0, cfg.LocationUpdatesPerSecond)
	assert.Equal(t, 3, cfg.LocationBurst)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("SPAWN_INTERVAL", "2m")
	t.Setenv("COLLECT_RADIUS_METERS", "25.5")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, cfg.SpawnInterval)
	assert.Equal(t, 25.5, cfg.CollectRadiusMeters)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		DiscordToken:             "test-token",
		MetricsPort:              8080,
		MetricsEndpoint:          "/metrics",
		LogLevel:                 "info",
		LogFormat:                "text",
		TickInterval:             time.Second,
		SpawnInterval:            time.Minute,
		DrinkTTL:                 5 * time.Minute,
		BatchSize:                3,
		BarCheckInRadiusMeters:   75,
		LocationUpdatesPerSecond: 1,
		LocationBurst:            3,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port too high", mutate: func(c *Config) { c.MetricsPort = 70000 }, wantErr: true},
		{name: "endpoint without slash", mutate: func(c *Config) { c.MetricsEndpoint = "metrics" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "chatty" }, wantErr: true},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
		{name: "zero tick", mutate: func(c *Config) { c.TickInterval = 0 }, wantErr: true},
		{name: "zero spawn interval", mutate: func(c *Config) { c.SpawnInterval = 0 }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.DrinkTTL = 0 }, wantErr: true},
		{name: "negative batch", mutate: func(c *Config) { c.BatchSize = -1 }, wantErr: true},
		{name: "zero batch", mutate: func(c *Config) { c.BatchSize = 0 }},
		{name: "negative collect radius", mutate: func(c *Config) { c.CollectRadiusMeters = -1 }, wantErr: true},
		{name: "zero check-in radius", mutate: func(c *Config) { c.BarCheckInRadiusMeters = 0 }, wantErr: true},
		{name: "negative rate", mutate: func(c *Config) { c.LocationUpdatesPerSecond = -1 }, wantErr: true},
		{name: "zero burst", mutate: func(c *Config) { c.LocationBurst = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigureLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())
	defer logrus.SetFormatter(logrus.StandardLogger().Formatter)

	cfg := validConfig()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"

	require.NoError(t, cfg.ConfigureLogging())
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
}
