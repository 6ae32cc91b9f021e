package middleware

import (
	"math"
	"net/http"
	"net/netip"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/company-directory/internal/config"
)

// idleTTL is how long an untouched bucket survives cleanup.
const idleTTL = 10 * time.Minute

// RateLimiter is a per-client token bucket limiter. Clients are keyed by
// address, so several connections from one host share a bucket.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[netip.Addr]*bucket
	capacity float64
	refill   float64 // tokens per second
	rejected prometheus.Counter
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewRateLimiter creates a limiter allowing cfg.PerMinute requests per client
// and starts its cleanup loop. Rejections are counted on reg. Call Stop on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig, reg prometheus.Registerer) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[netip.Addr]*bucket),
		capacity: float64(cfg.PerMinute),
		refill:   float64(cfg.PerMinute) / 60,
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "company_directory_http_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter.",
		}),
		now:  time.Now,
		stop: make(chan struct{}),
	}
	reg.MustRegister(rl.rejected)

	go rl.cleanup(cfg.CleanupInterval)
	return rl
}

// Stop terminates the cleanup loop. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wait, ok := rl.take(clientAddr(r))
			if !ok {
				rl.rejected.Inc()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take consumes one token for addr. When none is left it returns how long
// until the next token.
func (rl *RateLimiter) take(addr netip.Addr) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[addr]
	if !ok {
		b = &bucket{tokens: rl.capacity, last: now}
		rl.buckets[addr] = b
	}

	b.tokens = math.Min(rl.capacity, b.tokens+now.Sub(b.last).Seconds()*rl.refill)
	b.last = now

	if b.tokens < 1 {
		return time.Duration((1 - b.tokens) / rl.refill * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for addr, b := range rl.buckets {
		if now.Sub(b.last) > idleTTL {
			delete(rl.buckets, addr)
		}
	}
}
