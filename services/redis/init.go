package redis

import (
	"fmt"
	"log"
	"time"
)

// InitRedis initializes the Redis connection and checks it answers
func InitRedis(Addr string, DB int, ttl time.Duration) (*RedisClient, error) {
	rc, err := NewRedisClient(Addr, DB, ttl)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := rc.client.Ping(rc.ctx).Err(); err != nil {
		rc.client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("[CACHE] Successfully connected to Redis")
	return rc, nil
}

// CloseRedis gracefully closes the Redis connection
func CloseRedis(rc *RedisClient) error {
	if err := rc.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %w", err)
	}
	return nil
}
