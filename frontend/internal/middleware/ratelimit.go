package middleware

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/Ghorpaderamdas/server-Hotel/shared/logger"
)

const rateLimitedMsg = "Too many attempts. Please wait a minute and try again."

// Limiter is a token bucket per key. Buckets idle for longer than idle are
// forgotten by Sweep.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens per second
	capacity float64
	idle     time.Duration
	now      func() time.Time
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

func NewLimiter(rate, capacity float64, idle time.Duration) *Limiter {
	return &Limiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		idle:     idle,
		now:      time.Now,
	}
}

// PerMinute allows n requests a minute per key with bursts of up to burst.
// It returns nil, meaning no limit, when n is zero.
func PerMinute(n, burst int) *Limiter {
	if n <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return NewLimiter(float64(n)/60, float64(burst), 10*time.Minute)
}

func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.capacity, lastRefill: now}
		l.buckets[key] = b
	}

	b.tokens += now.Sub(b.lastRefill).Seconds() * l.rate
	if b.tokens > l.capacity {
		b.tokens = l.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Sweep drops idle buckets and returns how many were removed.
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.idle)
	removed := 0
	for key, b := range l.buckets {
		if b.lastRefill.Before(cutoff) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done. A nil Limiter returns at once.
func (l *Limiter) Run(ctx context.Context, interval time.Duration) {
	if l == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := l.Sweep(); n > 0 {
				logger.Log.Debug("rate limiter sweep", "removed", n)
			}
		}
	}
}

// RateLimit throttles form submissions per client address and path. A
// throttled browser is sent back to the page it posted from with a flash
// message. Safe methods and a nil Limiter pass through.
func RateLimit(l *Limiter, secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			if !l.Allow(clientIP(r) + " " + r.URL.Path) {
				logger.Log.Warn("rate limit exceeded", "ip", clientIP(r), "path", r.URL.Path)
				http.SetCookie(w, flashCookie(rateLimitedMsg, secureCookies))
				http.Redirect(w, r, backTo(r), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// backTo is the same-site page the form was posted from, or the form's own
// path.
func backTo(r *http.Request) string {
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" && (ref.Host == "" || ref.Host == r.Host) {
		return ref.RequestURI()
	}
	return r.URL.Path
}

// clientIP is the TCP peer. X-Forwarded-For and X-Real-IP are never read.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.String()
	}
	return host
}
