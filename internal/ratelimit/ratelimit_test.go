package ratelimit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		fwd    string
		remote string
		want   string
	}{
		{"remote only", "", "10.0.0.7:5555", "10.0.0.7"},
		{"forwarded", "203.0.113.9, 10.0.0.1", "10.0.0.1:80", "203.0.113.9"},
		{"forwarded single", " 198.51.100.2 ", "10.0.0.1:80", "198.51.100.2"},
		{"empty forwarded entry", " , 10.0.0.2", "10.0.0.1:80", "10.0.0.1"},
		{"remote without port", "", "local", "local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			if tt.fwd != "" {
				r.Header.Set("X-Forwarded-For", tt.fwd)
			}
			require.Equal(t, tt.want, ClientIP(r))
		})
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(3)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		require.True(t, l.Allow("a"))
	}
	require.False(t, l.Allow("a"))

	// other clients have their own bucket
	require.True(t, l.Allow("b"))

	// 3 per minute is one token every 20s
	now = now.Add(21 * time.Second)
	require.True(t, l.Allow("a"))
	require.False(t, l.Allow("a"))
}

func TestRateLimiter_ForgetsIdleClients(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(1)
	l.now = func() time.Time { return now }

	require.True(t, l.Allow("a"))
	now = now.Add(idleTTL + time.Second)
	require.True(t, l.Allow("b"))
	require.NotContains(t, l.clients, "a")
}

func TestNewRateLimiter_Default(t *testing.T) {
	require.Equal(t, DefaultPerMinute, NewRateLimiter(0).perMinute)
	require.Equal(t, DefaultPerMinute, NewRateLimiter(-5).perMinute)
}

func TestRateLimiter_Middleware(t *testing.T) {
	r := gin.New()
	r.GET("/limited", NewRateLimiter(2).Middleware(), func(c *gin.Context) {
		c.JSON(200, map[string]string{"ok": "yes"})
	})

	call := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, 200, call("1.1.1.1").Code)
	require.Equal(t, 200, call("1.1.1.1").Code)

	w := call("1.1.1.1")
	require.Equal(t, 429, w.Code)

	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Rate limit exceeded. Please try again later.", body.Detail)
	require.Equal(t, "HTTP_429", body.ErrorCode)

	require.Equal(t, 200, call("2.2.2.2").Code)
}
