package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIPRateLimiter_Get(t *testing.T) {
	limiter := newIPRateLimiter(60)

	t.Run("returns same limiter for same IP", func(t *testing.T) {
		first := limiter.get("10.0.0.1")
		second := limiter.get("10.0.0.1")
		if first != second {
			t.Error("get() returned different limiters for the same IP")
		}
	})

	t.Run("returns distinct limiters per IP", func(t *testing.T) {
		a := limiter.get("10.0.0.2")
		b := limiter.get("10.0.0.3")
		if a == b {
			t.Error("get() returned the same limiter for different IPs")
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allows requests within the budget", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(100))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "OK")
		})

		for i := 0; i < 10; i++ {
			req := httptest.NewRequest("GET", "/test", nil)
			req.RemoteAddr = "192.168.1.10:12345"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("request %d: status = %d, want %d", i, w.Code, http.StatusOK)
			}
		}
	})

	t.Run("rejects requests past the burst budget", func(t *testing.T) {
		// Burst equals the per-minute budget, so the 3rd request
		// from the same IP must be rejected.
		router := gin.New()
		router.Use(RateLimitMiddleware(2))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "OK")
		})

		statuses := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest("GET", "/test", nil)
			req.RemoteAddr = "192.168.1.20:12345"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			statuses = append(statuses, w.Code)
		}

		if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
			t.Errorf("first two requests = %v, want both %d", statuses[:2], http.StatusOK)
		}
		if statuses[2] != http.StatusTooManyRequests {
			t.Errorf("third request status = %d, want %d", statuses[2], http.StatusTooManyRequests)
		}
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(1))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "OK")
		})

		// Exhaust the first client's budget
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "192.168.1.30:12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("first client status = %d, want %d", w.Code, http.StatusOK)
		}

		// A different client still has a full bucket
		req = httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "192.168.1.31:12345"
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("second client status = %d, want %d", w.Code, http.StatusOK)
		}
	})
}
