// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// tokenBucket holds the remaining requests of one client for the current window
type tokenBucket struct {
	mu       sync.Mutex
	tokens   int
	refillAt time.Time
}

// RateLimiter is a fixed-window token bucket per client IP
type RateLimiter struct {
	mu       sync.RWMutex
	buckets  map[string]*tokenBucket
	capacity int
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter allowing capacity requests per interval
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	limiter := &RateLimiter{
		buckets:  make(map[string]*tokenBucket),
		capacity: capacity,
		interval: interval,
		done:     make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

// Stop ends the background cleanup
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

// cleanup drops buckets idle for two windows
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, bucket := range rl.buckets {
				bucket.mu.Lock()
				if now.Sub(bucket.refillAt) > rl.interval {
					delete(rl.buckets, ip)
				}
				bucket.mu.Unlock()
			}
			rl.mu.Unlock()
		}
	}
}

// Allow consumes a token for ip and reports the tokens left
func (rl *RateLimiter) Allow(ip string) (bool, int) {
	rl.mu.RLock()
	bucket, exists := rl.buckets[ip]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		// Another request may have created it meanwhile
		if bucket, exists = rl.buckets[ip]; !exists {
			bucket = &tokenBucket{
				tokens:   rl.capacity,
				refillAt: time.Now().Add(rl.interval),
			}
			rl.buckets[ip] = bucket
		}
		rl.mu.Unlock()
	}

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	now := time.Now()
	if now.After(bucket.refillAt) {
		bucket.tokens = rl.capacity
		bucket.refillAt = now.Add(rl.interval)
	}

	if bucket.tokens > 0 {
		bucket.tokens--
		return true, bucket.tokens
	}

	return false, 0
}

// RateLimitMiddleware limits requests to the given paths. With no paths
// every request through the middleware is limited.
func RateLimitMiddleware(limiter *RateLimiter, paths ...string) gin.HandlerFunc {
	pathMap := make(map[string]bool)
	for _, path := range paths {
		pathMap[path] = true
	}

	return func(c *gin.Context) {
		if len(pathMap) > 0 && !pathMap[c.Request.URL.Path] {
			c.Next()
			return
		}

		allowed, remaining := limiter.Allow(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.capacity))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(limiter.interval.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
