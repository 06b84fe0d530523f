package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

// KeyedLimiter hands out one token bucket per key and forgets keys that have
// been idle for a while.
type KeyedLimiter struct {
	limit rate.Limit
	burst int
	clock func() time.Time

	mu        sync.Mutex
	store     map[string]*limiterEntry
	lastPrune time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyedLimiter allows perMinute events per key with the given burst.
func NewKeyedLimiter(perMinute, burst int, clock func() time.Time) *KeyedLimiter {
	if clock == nil {
		clock = time.Now
	}
	if burst <= 0 {
		burst = 1
	}
	return &KeyedLimiter{
		limit: rate.Limit(float64(perMinute) / 60),
		burst: burst,
		clock: clock,
		store: make(map[string]*limiterEntry),
	}
}

// Reserve takes a token for key. It returns ok=false and the wait until the
// next token when the bucket is empty.
func (l *KeyedLimiter) Reserve(key string) (bool, time.Duration) {
	key = strings.TrimSpace(key)
	if key == "" {
		key = "anonymous"
	}
	now := l.clock()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPrune) > limiterIdleTTL {
		l.pruneLocked(now)
		l.lastPrune = now
	}
	entry, ok := l.store[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.store[key] = entry
	}
	entry.lastSeen = now

	res := entry.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, time.Minute
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Allow is Reserve without the wait.
func (l *KeyedLimiter) Allow(key string) bool {
	ok, _ := l.Reserve(key)
	return ok
}

func (l *KeyedLimiter) pruneLocked(now time.Time) {
	for key, entry := range l.store {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(l.store, key)
		}
	}
}

// RateLimit throttles requests per client IP. Only unsafe methods are counted so
// that rendering the form itself never trips the limit.
func RateLimit(l *KeyedLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			if ok, wait := l.Reserve(clientIP(r)); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, r, http.StatusTooManyRequests, "Too many requests. Please wait a moment and try again.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP expects chi's RealIP middleware to have resolved proxies already.
func clientIP(r *http.Request) string {
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return host
}
