package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	domainerr "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LimiterStore keeps one token bucket per client key and forgets idle clients
type LimiterStore struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rate    rate.Limit
	burst   int
	ttl     time.Duration
}

// NewLimiterStore creates a store allowing perSecond sustained requests with the given burst
func NewLimiterStore(perSecond float64, burst int, ttl time.Duration) *LimiterStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if burst <= 0 {
		burst = 1
	}
	return &LimiterStore{
		entries: make(map[string]*limiterEntry, 256),
		rate:    rate.Limit(perSecond),
		burst:   burst,
		ttl:     ttl,
	}
}

// Allow consumes one token for key
func (s *LimiterStore) Allow(key string) bool {
	now := time.Now()

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(s.rate, s.burst)}
		s.entries[key] = e
	}
	e.lastSeen = now
	s.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients
func (s *LimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartJanitor evicts idle clients every interval until ctx is done
func (s *LimiterStore) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	ticker := time.NewTicker(every)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.evictBefore(time.Now().Add(-s.ttl))
			}
		}
	}()
}

func (s *LimiterStore) evictBefore(cut time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if e.lastSeen.Before(cut) {
			delete(s.entries, k)
		}
	}
}

// RateLimit rejects clients exceeding their budget on a route
func RateLimit(store *LimiterStore, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		if !store.Allow(c.ClientIP() + ":" + route) {
			logger.Warn("Request rate limited", map[string]any{
				"client_ip":  c.ClientIP(),
				"route":      route,
				"request_id": GetRequestID(c),
			})
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:    domainerr.CodeRateLimited,
				Message: "Too many requests",
			})
			return
		}
		c.Next()
	}
}
