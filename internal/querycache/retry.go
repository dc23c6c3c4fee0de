package querycache

import (
	"math"
	"math/rand"
	"time"
)

// RetryConfig configures the read-query retry loop.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, first try included.
	MaxAttempts int
	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration
	// MaxBackoff caps the delay between retries.
	MaxBackoff time.Duration
	// BackoffMultiplier grows the delay between consecutive retries.
	BackoffMultiplier float64
	// Jitter adds randomness to each delay (0.0 to 1.0).
	Jitter float64
}

// DefaultRetryConfig matches the application's read policy: three attempts
// total, then give up and surface a connectivity error.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:       3,
		InitialBackoff:    100 * time.Millisecond,
		MaxBackoff:        5 * time.Second,
		BackoffMultiplier: 2.0,
		Jitter:            0.1,
	}
}

// backoff returns the delay before retry number attempt (0-based).
func (rc RetryConfig) backoff(attempt int) time.Duration {
	delay := float64(rc.InitialBackoff) * math.Pow(rc.BackoffMultiplier, float64(attempt))
	if capped := float64(rc.MaxBackoff); delay > capped {
		delay = capped
	}
	if rc.Jitter > 0 {
		delay += delay * rc.Jitter * (rand.Float64()*2 - 1)
	}
	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}
