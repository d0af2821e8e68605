package config

import (
	game_constants "Jokerscore/constants/game"
	"Jokerscore/services/redis"
	"log"
)

// Connect to Redis
func Connect_redis(cfg *Config) (*redis.RedisClient, error) {
	log.Printf("[CACHE] Connecting to Redis at %s", cfg.RedisURL)
	ttl := cfg.ScoreCacheTTL
	if ttl <= 0 {
		ttl = game_constants.DEFAULT_SCORE_CACHE_TTL
	}
	redisClient, err := redis.InitRedis(cfg.RedisURL, 0, ttl)
	if err != nil {
		log.Printf("[CACHE-ERROR] Error connecting to Redis: %v", err)
		return nil, err
	}
	log.Println("[CACHE] Redis connection established")
	return redisClient, nil
}
