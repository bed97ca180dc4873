package ratelimitmiddleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiter ограничивает число запросов в секунду с одного адреса
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	clients sync.Map
	logger  *zap.Logger
}

// NewRateLimiter returns a limiter allowing rps requests per second per client.
// A non-positive rps disables limiting.
func NewRateLimiter(rps float64, logger *zap.Logger) *RateLimiter {
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:  rate.Limit(rps),
		burst:  burst,
		logger: logger,
	}
}

func (rl *RateLimiter) enabled() bool {
	return rl.limit > 0
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	now := time.Now().UnixNano()

	if existing, ok := rl.clients.Load(ip); ok {
		entry := existing.(*limiterEntry)
		entry.lastSeen.Store(now)
		return entry.limiter
	}

	entry := &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
	entry.lastSeen.Store(now)

	actual, _ := rl.clients.LoadOrStore(ip, entry)
	return actual.(*limiterEntry).limiter
}

// Cleanup удаляет клиентов, не приходивших дольше idle
func (rl *RateLimiter) Cleanup(idle time.Duration) int {
	threshold := time.Now().Add(-idle).UnixNano()
	removed := 0
	rl.clients.Range(func(key, value any) bool {
		if value.(*limiterEntry).lastSeen.Load() < threshold {
			rl.clients.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.enabled() {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r)
		limiter := rl.getLimiter(ip)
		if !limiter.Allow() {
			rl.logger.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("uri", r.RequestURI))

			reservation := limiter.Reserve()
			retryAfter := int(reservation.Delay().Seconds())
			reservation.Cancel()
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			xff = xff[:idx]
		}
		if xff = strings.TrimSpace(xff); xff != "" {
			return xff
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
