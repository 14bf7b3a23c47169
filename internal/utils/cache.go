package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// GetCache retrieves a value from Redis and unmarshals it into dest. A nil
// client means caching is disabled and reports a miss.
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	val, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	if rdb == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}

// DeleteCache deletes a key from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, key string) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, key).Err()
}
