package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// historyKey is the Redis list holding archived sessions, newest at the head
	historyKey = "session_history"

	// DefaultLimit is how many entries are kept when Config.Limit is unset
	DefaultLimit = 20
)

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Limit is how many entries are kept. Defaults to DefaultLimit.
	Limit int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	limit  int
}

// NewRedis creates a new Redis-backed history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &redisRepository{
		client: cfg.RedisClient,
		limit:  limit,
	}, nil
}

// RecordEntry archives a closed session
func (r *redisRepository) RecordEntry(ctx context.Context, input *RecordEntryInput) error {
	if input == nil || input.Entry == nil {
		return ErrNilEntry
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, historyKey, entryJSON)
	pipe.LTrim(ctx, historyKey, 0, int64(r.limit-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store history entry: %w", err)
	}

	return nil
}

// ListEntries returns archived sessions, newest first
func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	values, err := r.client.LRange(ctx, historyKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list history entries: %w", err)
	}

	entries := make([]*models.HistoryEntry, 0, len(values))
	for _, value := range values {
		var entry models.HistoryEntry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}
