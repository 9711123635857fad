package httpapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// rateLimiter answers whether a client key may proceed.
type rateLimiter interface {
	allow(ctx context.Context, key string) bool
}

// redisLimiter counts requests per key in a one-minute redis window, so the
// limit holds across server replicas. Redis being down fails open.
type redisLimiter struct {
	client *redis.Client
	perMin int
}

func newRedisLimiter(client *redis.Client, perMin int) *redisLimiter {
	return &redisLimiter{client: client, perMin: perMin}
}

func (l *redisLimiter) allow(ctx context.Context, key string) bool {
	rkey := "ratelimit:" + key + ":" + time.Now().UTC().Format("200601021504")
	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, rkey)
	pipe.Expire(ctx, rkey, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return true
	}
	return incr.Val() <= int64(l.perMin)
}

// tokenBucketLimiter is the in-memory fallback when redis is not configured.
type tokenBucketLimiter struct {
	capacity int
	rate     int
	mu       sync.Mutex
	state    map[string]*bucket
}

type bucket struct {
	tokens int
	last   time.Time
}

func newTokenBucketLimiter(capacity, perMinute int) *tokenBucketLimiter {
	if capacity <= 0 {
		capacity = perMinute
	}
	return &tokenBucketLimiter{
		capacity: capacity,
		rate:     perMinute,
		state:    make(map[string]*bucket),
	}
}

func (l *tokenBucketLimiter) allow(_ context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.state[key]
	now := time.Now()
	if !ok {
		l.state[key] = &bucket{tokens: l.capacity - 1, last: now}
		return true
	}
	elapsed := now.Sub(b.last).Minutes()
	refill := int(elapsed * float64(l.rate))
	if refill > 0 {
		b.tokens += refill
		if b.tokens > l.capacity {
			b.tokens = l.capacity
		}
		b.last = now
	}
	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// rateLimit enforces per-IP limits using the given limiter.
func rateLimit(l rateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !l.allow(c.Request.Context(), ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit"})
			return
		}
		c.Next()
	}
}
