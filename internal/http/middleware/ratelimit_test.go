package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(100, 5, KeyByClientIP())
	r := newLimitedRouter(rl)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: got %d want 200", i, w.Code)
		}
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	// No replenishment within the test window.
	rl := NewRateLimiter(0.0001, 2, KeyByClientIP())
	r := newLimitedRouter(rl)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("burst request %d: got %d", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("got %d want 429", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Too many requests") {
		t.Fatalf("body: %s", w.Body.String())
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestRateLimiter_BucketsAreIndependentPerKey(t *testing.T) {
	rl := NewRateLimiter(0.0001, 1, func(c *gin.Context) string {
		return "key:" + c.GetHeader("X-Test-Key")
	})
	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(key string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Test-Key", key)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if send("a") != http.StatusOK {
		t.Fatalf("first request for key a should pass")
	}
	if send("a") != http.StatusTooManyRequests {
		t.Fatalf("second request for key a should be limited")
	}
	if send("b") != http.StatusOK {
		t.Fatalf("key b must have its own bucket")
	}
}

func TestRateLimiter_CoercesBurst(t *testing.T) {
	rl := NewRateLimiter(1, 0, KeyByClientIP())
	if rl.burst != 1 {
		t.Fatalf("burst: got %d want 1", rl.burst)
	}
}

func TestRateLimiter_SweepEvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1, KeyByClientIP())
	rl.ttl = time.Nanosecond

	rl.getVisitor("stale")
	time.Sleep(time.Millisecond)

	// Force the sweep threshold.
	rl.cleanupN = 4999
	rl.getVisitor("fresh")

	rl.mu.Lock()
	_, staleThere := rl.visitors["stale"]
	_, freshThere := rl.visitors["fresh"]
	rl.mu.Unlock()

	if staleThere {
		t.Fatalf("stale visitor should have been evicted")
	}
	if !freshThere {
		t.Fatalf("fresh visitor should remain")
	}
}
