package config

import "time"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Redis
	RedisAddr       string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	RedisMaxRetries uint64 `env:"REDIS_MAX_RETRIES" envDefault:"5"`

	// Metrics
	MetricsPort     int    `env:"METRICS_PORT" envDefault:"8080"`
	MetricsEndpoint string `env:"METRICS_ENDPOINT" envDefault:"/metrics"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Gameplay
	TickInterval  time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
	SpawnInterval time.Duration `env:"SPAWN_INTERVAL" envDefault:"60s"`
	DrinkTTL      time.Duration `env:"DRINK_TTL" envDefault:"300s"`
	BatchSize     int           `env:"SPAWN_BATCH_SIZE" envDefault:"3"`

	// CollectRadiusMeters of zero means the spawn radius measured on the ground
	CollectRadiusMeters    float64 `env:"COLLECT_RADIUS_METERS" envDefault:"0"`
	BarCheckInRadiusMeters float64 `env:"BAR_CHECKIN_RADIUS_METERS" envDefault:"75"`

	// Rate limit for location samples per user
	LocationUpdatesPerSecond float64 `env:"LOCATION_UPDATES_PER_SECOND" envDefault:"1"`
	LocationBurst            int     `env:"LOCATION_BURST" envDefault:"3"`
}
