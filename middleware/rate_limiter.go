package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"islamicdashboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter holds a token bucket per IP address.
type MemoryLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewMemoryLimiter allows max requests per window, refilled evenly.
func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	if max <= 0 {
		max = 1
	}
	return &MemoryLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(max)),
		burst:    max,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *MemoryLimiter) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (s *MemoryLimiter) Allow(_ context.Context, ip string) (bool, error) {
	return s.getLimiter(ip).Allow(), nil
}

// Cleanup forgets visitors idle for longer than idle and reports how many were removed.
func (s *MemoryLimiter) Cleanup(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-idle)
	for ip, v := range s.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(s.visitors, ip)
			removed++
		}
	}
	return removed
}

// RedisLimiter is a fixed-window counter shared by every server instance.
type RedisLimiter struct {
	Client *redis.Client
	Max    int
	Window time.Duration
}

func (r *RedisLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	window := time.Now().Truncate(r.Window).Unix()
	key := fmt.Sprintf("ratelimit:%s:%d", ip, window)

	count, err := r.Client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}
	if count == 1 {
		r.Client.Expire(ctx, key, r.Window)
	}
	return count <= int64(r.Max), nil
}

// RateLimitMiddleware limits requests per IP address. A limiter error lets the
// request through.
func RateLimitMiddleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		allowed, err := l.Allow(c.Request.Context(), ip)
		if err != nil {
			utils.Named("ratelimit").Warn("Rate limiter unavailable", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			utils.JSONError(c, utils.RateLimited())
			c.Abort()
			return
		}
		c.Next()
	}
}
