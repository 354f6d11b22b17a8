package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

var RedisClient *redis.Client

// ConnectRedis connects to the Redis instance holding carts and rate-limit counters
func ConnectRedis(ctx context.Context, redisURL string) error {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	RedisClient = redis.NewClient(opt)

	res, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	utils.Log.Infow("✅ Connected to Redis", "ping", res)
	return nil
}
