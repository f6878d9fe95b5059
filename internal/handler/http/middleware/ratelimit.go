package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/sunfocus/erp-backend-go/internal/domain/auth"
	"github.com/sunfocus/erp-backend-go/internal/handler/http/response"
	"golang.org/x/time/rate"
)

const defaultLimiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter hands out one token bucket per key. Buckets idle for
// longer than idleTTL are dropped on the next sweep.
type KeyedRateLimiter struct {
	visitors  map[string]*visitor
	mu        sync.Mutex
	r         rate.Limit
	b         int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		visitors:  make(map[string]*visitor),
		r:         r,
		b:         b,
		idleTTL:   defaultLimiterIdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (k *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastSweep) >= k.idleTTL {
		k.sweep(now)
	}

	v, exists := k.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(k.r, k.b)}
		k.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter
}

// Len reports how many buckets are currently tracked.
func (k *KeyedRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.visitors)
}

// sweep must be called with mu held.
func (k *KeyedRateLimiter) sweep(now time.Time) {
	for key, v := range k.visitors {
		if now.Sub(v.lastSeen) >= k.idleTTL {
			delete(k.visitors, key)
		}
	}
	k.lastSweep = now
}

// RateLimit throttles per authenticated employee, falling back to the client IP
// for requests without an identity.
func RateLimit(limiter *KeyedRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			if identity, err := auth.FromContext(r.Context()); err == nil {
				key = "employee:" + identity.EmployeeID
			}

			if !limiter.GetLimiter(key).Allow() {
				response.TooManyRequests(w, "Too many requests, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
