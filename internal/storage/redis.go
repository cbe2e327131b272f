package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jwebster45206/text-adventure/pkg/state"
	"github.com/jwebster45206/text-adventure/pkg/storage"
	"github.com/jwebster45206/text-adventure/pkg/world"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the saved game as JSON under a single Redis key.
type RedisStore struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// Ensure RedisStore implements Storage interface
var _ storage.Storage = (*RedisStore)(nil)

// NewRedisStore creates a Redis store from a redis:// URL. The save is kept
// under key, which must not be blank.
func NewRedisStore(redisURL, key string, logger *slog.Logger) (*RedisStore, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: save key cannot be empty", world.ErrInvalidArgument)
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStore{
		client: redis.NewClient(opt),
		key:    key,
		logger: logger,
	}, nil
}

// Health and lifecycle methods

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStore) WaitForConnection(ctx context.Context, maxRetries int, retryDelay time.Duration) error {
	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

// Save game operations

func (r *RedisStore) SaveGame(ctx context.Context, ss *state.SaveState) error {
	data, err := json.Marshal(ss)
	if err != nil {
		r.logger.Error("Failed to marshal save state", "error", err)
		return fmt.Errorf("failed to marshal save state: %w", err)
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Error("Failed to save game", "key", r.key, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

func (r *RedisStore) LoadGame(ctx context.Context) (*state.SaveState, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Debug("No saved game", "key", r.key)
			return nil, nil
		}
		r.logger.Error("Failed to load game", "key", r.key, "error", err)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	var ss *state.SaveState
	if err := json.Unmarshal(data, &ss); err != nil {
		r.logger.Error("Failed to unmarshal save state", "key", r.key, "error", err)
		return nil, fmt.Errorf("failed to unmarshal save state: %w", err)
	}
	if ss == nil {
		r.logger.Warn("Saved game is empty", "key", r.key)
		return nil, nil
	}
	return ss, nil
}

func (r *RedisStore) DeleteGame(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		r.logger.Error("Failed to delete saved game", "key", r.key, "error", err)
		return fmt.Errorf("failed to delete saved game: %w", err)
	}
	return nil
}
