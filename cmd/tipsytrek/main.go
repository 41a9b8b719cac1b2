package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/common/clock"
	"github.com/KirkDiggler/tipsytrek/internal/common/uuid"
	"github.com/KirkDiggler/tipsytrek/internal/config"
	"github.com/KirkDiggler/tipsytrek/internal/dice"
	"github.com/KirkDiggler/tipsytrek/internal/handlers/discord"
	"github.com/KirkDiggler/tipsytrek/internal/metrics"
	profileRepo "github.com/KirkDiggler/tipsytrek/internal/repositories/profile"
	visitLedgerRepo "github.com/KirkDiggler/tipsytrek/internal/repositories/visit_ledger"
	"github.com/KirkDiggler/tipsytrek/internal/services/messaging"
	"github.com/KirkDiggler/tipsytrek/internal/services/profile"
	"github.com/KirkDiggler/tipsytrek/internal/services/trek"
	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid config: %v", err)
	}

	if err := cfg.ConfigureLogging(); err != nil {
		logrus.Fatalf("Failed to configure logging: %v", err)
	}

	logrus.Info("Starting TipsyTrek")

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	if err := waitForRedis(redisClient, cfg.RedisMaxRetries); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Metrics
	m := metrics.New()
	metricsServer := metrics.NewServer(m, cfg.MetricsPort, cfg.MetricsEndpoint)
	metricsServer.Start()

	// Initialize repositories
	profileRepository, err := profileRepo.NewRedis(&profileRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logrus.Fatalf("Failed to create profile repository: %v", err)
	}

	systemClock := clock.New()
	uuidGenerator := uuid.New()

	visitLedgerRepository, err := visitLedgerRepo.NewRedis(&visitLedgerRepo.Config{
		RedisClient:   redisClient,
		UUIDGenerator: uuidGenerator,
		Clock:         systemClock,
	})
	if err != nil {
		logrus.Fatalf("Failed to create visit ledger repository: %v", err)
	}

	// Initialize services
	roller := dice.New(&dice.Config{})

	profileSvc, err := profile.New(&profile.Config{
		Repository: profileRepository,
		Metrics:    m,
	})
	if err != nil {
		logrus.Fatalf("Failed to create profile service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Roller: roller,
	})
	if err != nil {
		logrus.Fatalf("Failed to create messaging service: %v", err)
	}

	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		logrus.Fatalf("Failed to create Discord session: %v", err)
	}

	notifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Sender:           session,
		MessagingService: messagingSvc,
	})
	if err != nil {
		logrus.Fatalf("Failed to create notifier: %v", err)
	}

	trekSvc, err := trek.New(&trek.Config{
		TickInterval:           cfg.TickInterval,
		SpawnInterval:          cfg.SpawnInterval,
		DrinkTTL:               cfg.DrinkTTL,
		BatchSize:              cfg.BatchSize,
		CollectRadiusMeters:    cfg.CollectRadiusMeters,
		BarCheckInRadiusMeters: cfg.BarCheckInRadiusMeters,
		ProfileService:         profileSvc,
		VisitLedgerRepo:        visitLedgerRepository,
		Clock:                  systemClock,
		Roller:                 roller,
		UUIDGenerator:          uuidGenerator,
		Notifier:               notifier,
		Metrics:                m,
	})
	if err != nil {
		logrus.Fatalf("Failed to create trek service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:                  session,
		ApplicationID:            cfg.ApplicationID,
		GuildID:                  cfg.GuildID,
		TrekService:              trekSvc,
		MessagingService:         messagingSvc,
		LocationUpdatesPerSecond: cfg.LocationUpdatesPerSecond,
		LocationBurst:            cfg.LocationBurst,
	})
	if err != nil {
		logrus.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		logrus.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logrus.Info("Shutting down")

	if err := bot.Stop(); err != nil {
		logrus.WithError(err).Error("Error stopping bot")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Ending every session flushes the profiles still being written
	if err := trekSvc.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Error ending sessions")
	}

	if err := metricsServer.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Error stopping metrics server")
	}

	logrus.Info("TipsyTrek has been shut down")
}

// waitForRedis pings Redis with exponential backoff
func waitForRedis(client *redis.Client, maxRetries uint64) error {
	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("Redis not ready")
			return fmt.Errorf("failed to ping Redis: %w", err)
		}
		return nil
	}

	return backoff.Retry(ping, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries))
}
