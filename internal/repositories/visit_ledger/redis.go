package visit_ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/tipsytrek/internal/common/clock"
	"github.com/KirkDiggler/tipsytrek/internal/common/uuid"
	"github.com/KirkDiggler/tipsytrek/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	visitKeyPrefix      = "visit:"
	userVisitsKeyPrefix = "user_visits:"
)

// Config holds configuration for the Redis visit ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Generates visit IDs
	UUIDGenerator uuid.UUID

	// Stamps visits created without a timestamp
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client        *redis.Client
	uuidGenerator uuid.UUID
	clock         clock.Clock
}

// NewRedis creates a new Redis-backed visit ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:        cfg.RedisClient,
		uuidGenerator: cfg.UUIDGenerator,
		clock:         cfg.Clock,
	}, nil
}

// AddVisit stores the record and indexes it by time under its user
func (r *redisRepository) AddVisit(ctx context.Context, input *AddVisitInput) error {
	if input == nil || input.Visit == nil {
		return errors.New("input and visit cannot be nil")
	}

	visit := input.Visit

	if visit.ID == "" {
		return errors.New("visit ID cannot be empty")
	}

	if visit.UserID == "" {
		return errors.New("visit user ID cannot be empty")
	}

	if visit.Timestamp.IsZero() {
		visit.Timestamp = r.clock.Now()
	}

	visitJSON, err := json.Marshal(visit)
	if err != nil {
		return fmt.Errorf("failed to marshal visit: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, visitKey(visit.ID), visitJSON, 0)
	pipe.ZAdd(ctx, userVisitsKey(visit.UserID), redis.Z{
		Score:  float64(visit.Timestamp.UnixMilli()),
		Member: visit.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add visit: %w", err)
	}

	return nil
}

// CreateVisit creates a new visit record with a generated ID
func (r *redisRepository) CreateVisit(ctx context.Context, input *CreateVisitInput) (*CreateVisitOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	if input.BarName == "" {
		return nil, errors.New("bar name cannot be empty")
	}

	visit := &models.BarVisit{
		ID:        r.uuidGenerator.NewUUID(),
		UserID:    input.UserID,
		BarName:   input.BarName,
		Timestamp: input.Timestamp,
	}

	if err := r.AddVisit(ctx, &AddVisitInput{Visit: visit}); err != nil {
		return nil, fmt.Errorf("failed to save visit: %w", err)
	}

	return &CreateVisitOutput{Visit: visit}, nil
}

// GetVisitsForUser retrieves a user's visits, oldest first
func (r *redisRepository) GetVisitsForUser(ctx context.Context, input *GetVisitsForUserInput) (*GetVisitsForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if input.Limit < 0 {
		return nil, errors.New("limit cannot be negative")
	}

	start := int64(0)
	if input.Limit > 0 {
		start = int64(-input.Limit)
	}

	visitIDs, err := r.client.ZRange(ctx, userVisitsKey(input.UserID), start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get visit IDs for user: %w", err)
	}

	if len(visitIDs) == 0 {
		return &GetVisitsForUserOutput{
			Visits: []*models.BarVisit{},
		}, nil
	}

	// Fetch every record in one round trip
	pipe := r.client.Pipeline()
	visitCommands := make([]*redis.StringCmd, len(visitIDs))
	for i, visitID := range visitIDs {
		visitCommands[i] = pipe.Get(ctx, visitKey(visitID))
	}

	// redis.Nil for a single record is handled below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get visits: %w", err)
	}

	visits := make([]*models.BarVisit, 0, len(visitIDs))
	for i, cmd := range visitCommands {
		visitJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Record was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get visit %s: %w", visitIDs[i], err)
		}

		var visit models.BarVisit
		if err := json.Unmarshal([]byte(visitJSON), &visit); err != nil {
			return nil, fmt.Errorf("failed to unmarshal visit %s: %w", visitIDs[i], err)
		}

		visits = append(visits, &visit)
	}

	return &GetVisitsForUserOutput{
		Visits: visits,
	}, nil
}

// DeleteVisitsForUser removes a user's whole visit history
func (r *redisRepository) DeleteVisitsForUser(ctx context.Context, input *DeleteVisitsForUserInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	indexKey := userVisitsKey(input.UserID)
	visitIDs, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get visit IDs for user: %w", err)
	}

	keys := make([]string, 0, len(visitIDs)+1)
	for _, visitID := range visitIDs {
		keys = append(keys, visitKey(visitID))
	}
	keys = append(keys, indexKey)

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete visits: %w", err)
	}

	return nil
}

func visitKey(visitID string) string {
	return fmt.Sprintf("%s%s", visitKeyPrefix, visitID)
}

func userVisitsKey(userID string) string {
	return fmt.Sprintf("%s%s", userVisitsKeyPrefix, userID)
}
