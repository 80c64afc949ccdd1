package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/liammahoney/site-api/pkg/ctxutil"
)

// visitorIdleTTL is how long an unused limiter survives cleanup.
const visitorIdleTTL = 10 * time.Minute

// RateLimiter hands out one token bucket per limit name and client address,
// so the contact and auth budgets of a client are independent.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	now      func() time.Time
	stop     chan struct{}
	once     sync.Once
}

type visitor struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts a limiter that drops idle visitors every
// cleanupInterval until Stop is called. A non-positive interval falls back
// to visitorIdleTTL.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	if cleanupInterval <= 0 {
		cleanupInterval = visitorIdleTTL
	}
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop ends background cleanup. It may be called more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows each client perMinute requests a minute, with bursts up to
// the full minute's budget. Rejected requests get 429 and Retry-After.
func (rl *RateLimiter) Limit(name string, perMinute int) Middleware {
	every := rate.Every(time.Minute / time.Duration(max(perMinute, 1)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ctxutil.ClientIPFromCtx(r.Context())
			if ip == "" {
				ip = r.RemoteAddr
			}

			now := rl.now()
			res := rl.limiter(name+"|"+ip, every, perMinute, now).ReserveN(now, 1)
			if delay := res.DelayFrom(now); !res.OK() || delay > 0 {
				res.CancelAt(now)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) limiter(key string, every rate.Limit, burst int, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{lim: rate.NewLimiter(every, max(burst, 1))}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.lim
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTTL {
			delete(rl.visitors, key)
		}
	}
}
