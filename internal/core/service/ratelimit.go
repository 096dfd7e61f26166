package service

import (
	"golang.org/x/time/rate"

	"github.com/vidgate/vidgate-go/pkg/cmap"
)

// LimiterRegistry keeps one token-bucket limiter per client key
// (typically an IP address).
type LimiterRegistry struct {
	limiters *cmap.Map[*rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewLimiterRegistry creates a registry where each key may perform
// burst requests immediately and refills at limit events per second.
func NewLimiterRegistry(limit rate.Limit, burst int) *LimiterRegistry {
	return &LimiterRegistry{
		limiters: cmap.New[*rate.Limiter](),
		limit:    limit,
		burst:    burst,
	}
}

// Allow reports whether key may perform another request now.
func (r *LimiterRegistry) Allow(key string) bool {
	l, ok := r.limiters.Get(key)
	if !ok {
		l = rate.NewLimiter(r.limit, r.burst)
		if !r.limiters.SetIfAbsent(key, l) {
			l, _ = r.limiters.Get(key)
		}
	}
	return l.Allow()
}

// Len returns the number of tracked keys.
func (r *LimiterRegistry) Len() int {
	return r.limiters.Len()
}
