package ethereum

import (
	"context"
	"strings"
	"time"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
)

type RetryConfig struct {
	MaxRetries        int
	Delay             time.Duration
	BackoffMultiplier float64
	// OnRetry is invoked before each sleep with the 1-based retry number.
	OnRetry func(retry int, err error, delay time.Duration)
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:        3,
		Delay:             time.Second,
		BackoffMultiplier: 2,
	}
}

var retryableFragments = []string{
	"rate limit",
	"too many requests",
	"429",
	"timeout",
	"timed out",
}

// IsRetryableError matches rate-limit and timeout errors by their text.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, f := range retryableFragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}

// WithRetry runs op up to MaxRetries+1 times. Only retryable errors are retried; anything else
// returns after the first invocation. Once the budget is spent the last error is returned as a
// TransientRpcError.
func WithRetry[T any](ctx context.Context, cfg *RetryConfig, op func(ctx context.Context) (T, error)) (T, error) {
	if cfg == nil {
		cfg = DefaultRetryConfig()
	}
	var zero T
	delay := cfg.Delay
	attempts := 0

	for {
		res, err := op(ctx)
		attempts++
		if err == nil {
			return res, nil
		}
		if !IsRetryableError(err) {
			return zero, err
		}
		if attempts > cfg.MaxRetries {
			return zero, &errorTypes.TransientRpcError{Attempts: attempts, Err: err}
		}
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempts, err, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
		delay = time.Duration(float64(delay) * cfg.BackoffMultiplier)
	}
}
