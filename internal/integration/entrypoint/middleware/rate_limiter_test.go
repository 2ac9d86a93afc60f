package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newRateLimitedRouter(t *testing.T, maxAttempts int, window time.Duration) *gin.Engine {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	limiter := NewRateLimiterWithConfig(client, maxAttempts, window)
	engine.POST("/api/auth/login", limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return engine
}

func attempt(engine *gin.Engine, ip string) int {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	request.RemoteAddr = ip + ":1234"
	engine.ServeHTTP(recorder, request)
	return recorder.Code
}

func TestRateLimiter(t *testing.T) {
	t.Run("throttles after the attempt limit", func(t *testing.T) {
		engine := newRateLimitedRouter(t, 5, time.Minute)

		for i := 0; i < 5; i++ {
			if code := attempt(engine, "10.0.0.1"); code != http.StatusOK {
				t.Fatalf("attempt %d: expected 200, got %d", i+1, code)
			}
		}
		if code := attempt(engine, "10.0.0.1"); code != http.StatusTooManyRequests {
			t.Errorf("expected 429 on the sixth attempt, got %d", code)
		}
	})

	t.Run("windows are per client", func(t *testing.T) {
		engine := newRateLimitedRouter(t, 1, time.Minute)

		if code := attempt(engine, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if code := attempt(engine, "10.0.0.1"); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", code)
		}
		if code := attempt(engine, "10.0.0.2"); code != http.StatusOK {
			t.Errorf("another client should not be throttled, got %d", code)
		}
	})

	t.Run("lets requests through when redis is down", func(t *testing.T) {
		server := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		t.Cleanup(func() { client.Close() })
		server.Close()

		gin.SetMode(gin.TestMode)
		engine := gin.New()
		limiter := NewRateLimiterWithConfig(client, 1, time.Minute)
		engine.POST("/api/auth/login", limiter.Middleware(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		for i := 0; i < 3; i++ {
			if code := attempt(engine, "10.0.0.1"); code != http.StatusOK {
				t.Errorf("attempt %d: expected fail-open 200, got %d", i+1, code)
			}
		}
	})
}
