package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Overall is "degraded" when any monitored dependency failed its last check.
func (h HealthStatus) Overall() string {
	for _, ok := range h.Redis {
		if !ok {
			return StatusDegraded
		}
	}
	return StatusHealthy
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func setHealthStatus(h HealthStatus) {
	mu.Lock()
	currentHealth = h
	mu.Unlock()
}

// CheckRedis pings every client once.
func CheckRedis(ctx context.Context, clients []*redis.Client) []bool {
	health := make([]bool, 0, len(clients))
	for _, client := range clients {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		health = append(health, client.Ping(pingCtx).Err() == nil)
		cancel()
	}
	return health
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, redisClients []*redis.Client, interval time.Duration) {
	setHealthStatus(HealthStatus{Redis: CheckRedis(ctx, redisClients), CheckedAt: time.Now()})
	if len(redisClients) == 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				status := HealthStatus{Redis: CheckRedis(ctx, redisClients), CheckedAt: time.Now()}
				if status.Overall() != StatusHealthy {
					Named("health").Warn("Dependency health check failed", zap.Bools("redis", status.Redis))
				}
				setHealthStatus(status)
			}
		}
	}()
}
