// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"islamicdashboard/config"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// NewRateLimitClient connects to the Redis DB reserved for rate-limit counters.
func NewRateLimitClient(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisRateLimitDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (rate limit): %w", err)
	}
	return client, nil
}

// QueueRedisOpt returns the asynq connection options for the push queue.
func QueueRedisOpt(cfg config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
}
