package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	visitorTTL       = 10 * time.Minute
	cleanupThreshold = 5000
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter is a per-client-IP token bucket limiter.
// Idle buckets are evicted opportunistically during lookups.
type rateLimiter struct {
	rps      rate.Limit
	burst    int
	mu       sync.Mutex
	visitors map[string]*visitor
	lookups  int
	now      func() time.Time
}

func newRateLimiter(rps float64, burst int) *rateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &rateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

func (rl *rateLimiter) limiterFor(key string) *rate.Limiter {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Evict before touching key so a stale bucket for key is replaced too
	rl.lookups++
	if rl.lookups >= cleanupThreshold {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= visitorTTL {
				delete(rl.visitors, k)
			}
		}
		rl.lookups = 0
	}

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}
	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[key] = &visitor{limiter: lim, lastSeen: now}
	return lim
}

// handler rejects requests over the client's budget with 429
func (rl *rateLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiterFor(c.ClientIP()).Allow() {
			c.Next()
			return
		}
		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"msg": "too many requests"})
	}
}
