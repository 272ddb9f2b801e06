// Package ratelimit provides a per-client token bucket middleware
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/jhanaviii/AI-Travel-Agent/internal/mwlogger"
	"github.com/jhanaviii/AI-Travel-Agent/internal/transport"
	"golang.org/x/time/rate"
)

// DefaultPerMinute is used when no positive limit is configured
const DefaultPerMinute = 100

// idle clients are forgotten after this long
const idleTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	perMinute int
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter refills perMinute tokens a minute with a burst of the same size
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = DefaultPerMinute
	}
	return &RateLimiter{
		clients:   make(map[string]*client),
		perMinute: perMinute,
		now:       time.Now,
	}
}

// Allow takes one token from key's bucket
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > idleTTL {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) > idleTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Limit(float64(l.perMinute)/60), l.perMinute)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Middleware answers 429 once the client's bucket is empty
func (l *RateLimiter) Middleware() func(*gin.Context) {
	return func(c *gin.Context) {
		ip := ClientIP(c.Request)
		if l.Allow(ip) {
			c.Next()
			return
		}

		logger := mwlogger.LoggerFromContext(c.Request.Context())
		logger.Warn().Str("client", ip).Msg("Rate limit exceeded")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, transport.ErrorBody(http.StatusTooManyRequests, model.ErrRateLimited.Error()))
	}
}

// ClientIP is the first X-Forwarded-For entry, else the remote host
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
