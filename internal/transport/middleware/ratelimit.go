package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Buckets untouched for this long are evicted by the cleanup loop.
const bucketIdleEviction = 10 * time.Minute

// RateLimiter applies a token-bucket limit per client IP. Buckets are
// created lazily and evicted after sitting idle.
type RateLimiter struct {
	buckets sync.Map // client IP -> *tokenBucket
	stop    chan struct{}
}

type tokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	perSecond  float64
	lastRefill time.Time
}

// NewRateLimiter starts the background eviction loop. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.evictIdle(cleanupInterval)
	return rl
}

// Stop terminates the eviction goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit caps requests at maxPerMinute per client IP, answering 429 with a
// Retry-After hint once the bucket is drained.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.bucketFor(clientIP(r), maxPerMinute)
			if !b.take() {
				retryAfter := int(60.0/float64(maxPerMinute)) + 1
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP keys buckets by host so a client cannot reset its budget by
// reconnecting from a new source port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) bucketFor(key string, maxPerMinute int) *tokenBucket {
	capacity := float64(maxPerMinute)
	val, _ := rl.buckets.LoadOrStore(key, &tokenBucket{
		tokens:     capacity,
		capacity:   capacity,
		perSecond:  capacity / 60.0,
		lastRefill: time.Now(),
	})
	return val.(*tokenBucket)
}

func (b *tokenBucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.perSecond
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) evictIdle(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.buckets.Range(func(key, value any) bool {
				b := value.(*tokenBucket)
				b.mu.Lock()
				idle := now.Sub(b.lastRefill)
				b.mu.Unlock()
				if idle > bucketIdleEviction {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}
