package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiterStore holds per-client-IP limiters. It is created once at
// process start and injected into the middleware rather than living as a
// package-level map.
type RateLimiterStore struct {
	mu             sync.Mutex
	limiters       map[string]*rate.Limiter
	requestsPerMin int
}

// NewRateLimiterStore builds a store allowing requestsPerMin requests per
// minute per client IP.
func NewRateLimiterStore(requestsPerMin int) *RateLimiterStore {
	if requestsPerMin <= 0 {
		requestsPerMin = 100
	}
	return &RateLimiterStore{
		limiters:       make(map[string]*rate.Limiter),
		requestsPerMin: requestsPerMin,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *RateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.requestsPerMin)), s.requestsPerMin)
		s.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits requests per IP address using the injected store.
func RateLimitMiddleware(store *RateLimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ip := getClientIP(c)
		limiter := store.getLimiter(ip)
		if !limiter.Allow() {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
