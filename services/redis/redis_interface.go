package redis

import (
	"Jokerscore/services/poker"
	redis_utils "Jokerscore/services/redis/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

// NewRedisClient creates a new Redis client instance. Addr is either a
// redis:// URL or a plain host:port.
func NewRedisClient(Addr string, DB int, ttl time.Duration) (*RedisClient, error) {
	var client *redis.Client
	if strings.HasPrefix(Addr, "redis://") || strings.HasPrefix(Addr, "rediss://") {
		log.Println("[CACHE] Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
		ttl:    ttl,
	}, nil
}

// TTL is how long a cached score lives.
func (rc *RedisClient) TTL() time.Duration {
	return rc.ttl
}

// SaveRoundScore stores the scored result of a round
// Key format: "score:{round key}"
// TTL: the client's cache TTL
func (rc *RedisClient) SaveRoundScore(roundKey string, result *poker.Result) error {
	key := redis_utils.FormatRoundScoreKey(roundKey)

	// the trace is never cached, explain requests always recompute it
	stored := *result
	stored.Steps = nil

	data, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("error marshaling score data: %w", err)
	}
	return rc.client.Set(rc.ctx, key, data, rc.ttl).Err()
}

// GetRoundScore retrieves the cached result of a round
// Key format: "score:{round key}"
// Returns: nil, nil when nothing is cached
func (rc *RedisClient) GetRoundScore(roundKey string) (*poker.Result, error) {
	key := redis_utils.FormatRoundScoreKey(roundKey)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting score data: %w", err)
	}

	var result poker.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling score data: %w", err)
	}
	return &result, nil
}

// DeleteRoundScore removes a cached result
// Key format: "score:{round key}"
func (rc *RedisClient) DeleteRoundScore(roundKey string) error {
	return rc.CleanupKeys([]string{redis_utils.FormatRoundScoreKey(roundKey)})
}
