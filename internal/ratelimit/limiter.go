package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// ChannelLimiter throttles outbound calls per delivery channel so a burst
// of triggered alerts cannot flood a single destination.
type ChannelLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewChannelLimiter(config RateLimitConfig) *ChannelLimiter {
	return &ChannelLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewChannelLimiterWithDefaults() *ChannelLimiter {
	return NewChannelLimiter(DefaultConfig())
}

func (c *ChannelLimiter) GetLimiter(channel string) *rate.Limiter {
	c.mu.RLock()
	limiter, exists := c.limiters[channel]
	c.mu.RUnlock()

	if exists {
		return limiter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if limiter, exists = c.limiters[channel]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(c.defaults.RequestsPerSecond), c.defaults.BurstSize)
	c.limiters[channel] = limiter
	return limiter
}

func (c *ChannelLimiter) SetChannelLimit(channel string, rps float64, burst int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.limiters[channel] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (c *ChannelLimiter) Wait(ctx context.Context, channel string) error {
	return c.GetLimiter(channel).Wait(ctx)
}
