package names

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis names repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// namesKey is the per-arena display-name hash
func namesKey(arena string) string {
	return fmt.Sprintf("%s:names", arena)
}

// NewRedis creates a new Redis-backed names repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
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

// GetName returns a player's display name, or "" when unknown
func (r *redisRepository) GetName(ctx context.Context, input *GetNameInput) (string, error) {
	if input == nil || input.Arena == "" || input.PlayerID == "" {
		return "", errors.New("input, arena, and player ID cannot be empty")
	}

	name, err := r.client.HGet(ctx, namesKey(input.Arena), input.PlayerID).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get player name: %w", err)
	}

	return name, nil
}

// SetName records a player's display name
func (r *redisRepository) SetName(ctx context.Context, input *SetNameInput) error {
	if input == nil || input.Arena == "" || input.PlayerID == "" || input.Name == "" {
		return errors.New("input, arena, player ID, and name cannot be empty")
	}

	if err := r.client.HSet(ctx, namesKey(input.Arena), input.PlayerID, input.Name).Err(); err != nil {
		return fmt.Errorf("failed to set player name: %w", err)
	}

	return nil
}

// GetAllNames returns the full playerId -> display name mapping
func (r *redisRepository) GetAllNames(ctx context.Context, input *GetAllNamesInput) (map[string]string, error) {
	if input == nil || input.Arena == "" {
		return nil, errors.New("input and arena cannot be empty")
	}

	names, err := r.client.HGetAll(ctx, namesKey(input.Arena)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player names: %w", err)
	}

	return names, nil
}
