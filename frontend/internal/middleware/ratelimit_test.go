package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time      { return c.t }
func (c *fakeClock) add(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(rate, capacity float64) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	l := NewLimiter(rate, capacity, time.Minute)
	l.now = clock.now
	return l, clock
}

func TestLimiter_Allow(t *testing.T) {
	t.Run("allows a burst up to capacity", func(t *testing.T) {
		l, _ := newTestLimiter(1, 3)
		for i := 0; i < 3; i++ {
			assert.True(t, l.Allow("a"), "request %d", i)
		}
		assert.False(t, l.Allow("a"))
	})

	t.Run("refills tokens over time", func(t *testing.T) {
		l, clock := newTestLimiter(1, 1)
		require.True(t, l.Allow("a"))
		require.False(t, l.Allow("a"))

		clock.add(time.Second)
		assert.True(t, l.Allow("a"))
	})

	t.Run("does not exceed capacity", func(t *testing.T) {
		l, clock := newTestLimiter(1, 2)
		clock.add(time.Hour)
		assert.True(t, l.Allow("a"))
		assert.True(t, l.Allow("a"))
		assert.False(t, l.Allow("a"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		l, _ := newTestLimiter(1, 1)
		assert.True(t, l.Allow("a"))
		assert.False(t, l.Allow("a"))
		assert.True(t, l.Allow("b"))
	})

	t.Run("concurrent access", func(t *testing.T) {
		l, _ := newTestLimiter(0, 50)
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			allowed int
		)
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if l.Allow("a") {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, allowed)
	})
}

func TestLimiter_Sweep(t *testing.T) {
	l, clock := newTestLimiter(1, 1)
	l.Allow("old")
	clock.add(2 * time.Minute)
	l.Allow("fresh")

	assert.Equal(t, 1, l.Sweep())
	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "fresh")
}

func TestLimiter_RunNil(t *testing.T) {
	var l *Limiter
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l.Run(ctx, time.Millisecond)
}

func TestPerMinute(t *testing.T) {
	assert.Nil(t, PerMinute(0, 5))

	l := PerMinute(6, 0)
	require.NotNil(t, l)
	assert.InDelta(t, 0.1, l.rate, 1e-9)
	assert.Equal(t, 1.0, l.capacity)
}

func TestRateLimit(t *testing.T) {
	l, _ := newTestLimiter(0, 1)
	var calls int
	h := RateLimit(l, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNoContent)
	}))

	post := func(path, addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, post("/auth/login", "10.0.0.1:5000").Code)

	w := post("/auth/login", "10.0.0.1:5001")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
	assert.Equal(t, rateLimitedMsg, flashError(t, w))

	// Back to the page the form lives on when the browser says where that is.
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:5004"
	req.Header.Set("Referer", "http://example.com/auth/login?next=%2Fprofile")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "/auth/login?next=%2Fprofile", w.Header().Get("Location"))

	// Other forms and other clients keep their own budget.
	assert.Equal(t, http.StatusNoContent, post("/feedback", "10.0.0.1:5002").Code)
	assert.Equal(t, http.StatusNoContent, post("/auth/login", "10.0.0.2:5000").Code)

	// Page views are never throttled.
	req = httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:5003"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 4, calls)
}

func TestBackTo(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", "/feedback"},
		{"http://example.com/feedback?sent=1", "/feedback?sent=1"},
		{"https://evil.test/phish", "/feedback"},
		{"/contact", "/contact"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/feedback", nil)
		if tt.referer != "" {
			req.Header.Set("Referer", tt.referer)
		}
		assert.Equal(t, tt.want, backTo(req), tt.referer)
	}
}

func TestRateLimit_NilLimiter(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := RateLimit(nil, false)(next)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientIP_IgnoresSpoofedHeaders(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{"ipv4 peer", "203.0.113.50:12345", "203.0.113.50"},
		{"ipv6 peer", "[2001:db8::1]:443", "2001:db8::1"},
		{"no port", "203.0.113.50", "203.0.113.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/feedback", nil)
			req.RemoteAddr = tt.remoteAddr
			req.Header.Set("X-Real-IP", "10.0.0.1")
			req.Header.Set("X-Forwarded-For", "10.0.0.2, 10.0.0.3")
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
