package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsByRoutePath(t *testing.T) {
	before := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/api/articles/:article_id", "200"))

	r := gin.New()
	r.Use(Metrics())
	r.GET("/api/articles/:article_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/articles/1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}

	after := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/api/articles/:article_id", "200"))
	if after != before+1 {
		t.Fatalf("counter: got %v want %v", after, before+1)
	}
}

func TestMetrics_UnmatchedRouteUsesRawPath(t *testing.T) {
	before := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/nope", "404"))

	r := gin.New()
	r.Use(Metrics())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	after := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/nope", "404"))
	if after != before+1 {
		t.Fatalf("counter: got %v want %v", after, before+1)
	}
}

func TestMetrics_InflightReturnsToZero(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := testutil.ToFloat64(httpInflight); got != 0 {
		t.Fatalf("inflight after request: got %v want 0", got)
	}
}
