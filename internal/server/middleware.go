package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"stock-organizer/internal/logger"
)

// A bucket refills completely within a minute, so a client idle this long
// gets the same bucket a new one would.
const (
	limiterIdleTTL   = 3 * time.Minute
	limiterSweepEach = time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Idle clients are swept on access.
type RateLimiter struct {
	ips       map[string]*client
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter allows perMinute requests per IP with an equal burst
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		ips:     make(map[string]*client),
		rate:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		idleTTL: limiterIdleTTL,
		now:     time.Now,
	}
}

// GetLimiter returns the bucket for ip, creating it on first sight
func (rl *RateLimiter) GetLimiter(ip string) *rate.Limiter {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweepLocked(now)

	c, ok := rl.ips[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.ips[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}

// Len returns the number of tracked clients
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.ips)
}

// sweepLocked drops idle clients, at most once per limiterSweepEach
func (rl *RateLimiter) sweepLocked(now time.Time) {
	if now.Sub(rl.lastSweep) < limiterSweepEach {
		return
	}
	rl.lastSweep = now

	for ip, c := range rl.ips {
		if now.Sub(c.lastSeen) > rl.idleTTL {
			delete(rl.ips, ip)
		}
	}
	logger.Debug("Rate limiter tracking %d clients", len(rl.ips))
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.GetLimiter(ip).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
