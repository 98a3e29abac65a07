package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// rateLimiter admits at most limit events per key inside a sliding window.
type rateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	events map[string][]time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:  limit,
		window: window,
		events: make(map[string][]time.Time),
	}
}

// allow records an event for key and reports whether it fits in the window.
// Rejected events are not recorded.
func (limiter *rateLimiter) allow(key string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	recent := limiter.recentLocked(key, now)
	if len(recent) >= limiter.limit {
		return false
	}
	limiter.events[key] = append(recent, now)
	return true
}

func (limiter *rateLimiter) recentLocked(key string, now time.Time) []time.Time {
	values := limiter.events[key]
	threshold := now.Add(-limiter.window)

	kept := values[:0]
	for _, value := range values {
		if value.After(threshold) {
			kept = append(kept, value)
		}
	}
	if len(kept) == 0 {
		delete(limiter.events, key)
		return nil
	}
	limiter.events[key] = kept
	return kept
}

func requestLimiterKey(c *fiber.Ctx) string {
	key := strings.TrimSpace(c.IP())
	if key == "" {
		return "unknown"
	}
	return key
}
