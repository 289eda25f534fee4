package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tileworks/tile-estimator/internal/domain/dto"
	"github.com/tileworks/tile-estimator/internal/i18n"
)

const defaultNumShards = 16

// visitor tracks the fixed window of one client.
type visitor struct {
	tokens    int
	lastReset time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a fixed-window limiter keyed by client IP. Visitors are
// spread over shards to keep lock contention low.
type RateLimiter struct {
	shards []*rateLimiterShard
	rate   int
	window time.Duration
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

// NewRateLimiter creates a limiter allowing rate requests per window.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	shards := make([]*rateLimiterShard, defaultNumShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards: shards,
		rate:   rate,
		window: window,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow consumes one token and reports the tokens left and when the window
// resets.
func (rl *RateLimiter) allow(identifier string) (allowed bool, remaining int, reset time.Duration) {
	s := rl.shard(identifier)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := rl.now()
	v, ok := s.visitors[identifier]
	if !ok || now.Sub(v.lastReset) >= rl.window {
		v = &visitor{tokens: rl.rate, lastReset: now}
		s.visitors[identifier] = v
	}
	reset = rl.window - now.Sub(v.lastReset)

	if v.tokens <= 0 {
		return false, 0, reset
	}
	v.tokens--
	return true, v.tokens, reset
}

// RateLimit returns a middleware that limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, reset := rl.allow(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(reset.Seconds()))))
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.removeIdle()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) removeIdle() {
	now := rl.now()
	for _, s := range rl.shards {
		s.mu.Lock()
		for id, v := range s.visitors {
			if now.Sub(v.lastReset) > 2*rl.window {
				delete(s.visitors, id)
			}
		}
		s.mu.Unlock()
	}
}

// Visitors returns the number of tracked clients.
func (rl *RateLimiter) Visitors() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.visitors)
		s.mu.Unlock()
	}
	return total
}

// Stop ends the cleanup loop.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}
