package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/tipsytrek/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	profileKeyPrefix = "profile:"
)

// ErrProfileNotFound is returned when a profile is not found
var ErrProfileNotFound = errors.New("profile not found")

// Config holds configuration for the Redis profile repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveProfile stores the whole profile document under its user ID
func (r *redisRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if input == nil || input.Profile == nil {
		return errors.New("input and profile cannot be nil")
	}

	p := input.Profile
	if p.UID == "" {
		return errors.New("profile UID cannot be empty")
	}

	profileJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := r.client.Set(ctx, profileKey(p.UID), profileJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile by user ID from Redis
func (r *redisRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	profileJSON, err := r.client.Get(ctx, profileKey(input.UserID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(profileJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	// Older documents may omit the drink lists entirely
	if p.CurrentDrinks == nil {
		p.CurrentDrinks = []models.Beverage{}
	}
	if p.AllTimeDrinks == nil {
		p.AllTimeDrinks = []models.Beverage{}
	}

	return &p, nil
}

// DeleteProfile removes a stored profile. Deleting a missing profile is not an error.
func (r *redisRepository) DeleteProfile(ctx context.Context, input *DeleteProfileInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if err := r.client.Del(ctx, profileKey(input.UserID)).Err(); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}

func profileKey(userID string) string {
	return fmt.Sprintf("%s%s", profileKeyPrefix, userID)
}
