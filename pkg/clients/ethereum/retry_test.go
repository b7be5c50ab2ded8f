package ethereum

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/stretchr/testify/assert"
)

func fastRetryConfig() *RetryConfig {
	return &RetryConfig{MaxRetries: 3, Delay: time.Millisecond, BackoffMultiplier: 2}
}

func Test_WithRetry(t *testing.T) {
	t.Run("Should retry rate limit errors until success", func(t *testing.T) {
		for k := 0; k < 3; k++ {
			calls := 0
			res, err := WithRetry(context.Background(), fastRetryConfig(), func(ctx context.Context) (string, error) {
				calls++
				if calls <= k {
					return "", errors.New("429 Too Many Requests")
				}
				return "ok", nil
			})
			assert.Nil(t, err)
			assert.Equal(t, "ok", res)
			assert.Equal(t, k+1, calls)
		}
	})
	t.Run("Should not retry other errors", func(t *testing.T) {
		calls := 0
		_, err := WithRetry(context.Background(), fastRetryConfig(), func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("execution reverted")
		})
		assert.EqualError(t, err, "execution reverted")
		assert.Equal(t, 1, calls)
	})
	t.Run("Should surface a TransientRpcError after the budget is spent", func(t *testing.T) {
		calls := 0
		retries := []time.Duration{}
		cfg := fastRetryConfig()
		cfg.OnRetry = func(retry int, err error, delay time.Duration) {
			retries = append(retries, delay)
		}
		_, err := WithRetry(context.Background(), cfg, func(ctx context.Context) (int, error) {
			calls++
			return 0, fmt.Errorf("request timed out")
		})
		var tre *errorTypes.TransientRpcError
		assert.True(t, errors.As(err, &tre))
		assert.Equal(t, 4, tre.Attempts)
		assert.Equal(t, 4, calls)
		assert.ErrorContains(t, err, "request timed out")
		assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond}, retries)
	})
	t.Run("Should stop when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cfg := &RetryConfig{MaxRetries: 3, Delay: time.Hour, BackoffMultiplier: 2}
		calls := 0
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		_, err := WithRetry(ctx, cfg, func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("rate limit exceeded")
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
	t.Run("IsRetryableError", func(t *testing.T) {
		assert.True(t, IsRetryableError(errors.New("Rate Limit reached")))
		assert.True(t, IsRetryableError(errors.New("context deadline: Timeout")))
		assert.False(t, IsRetryableError(errors.New("nonce too low")))
		assert.False(t, IsRetryableError(nil))
	})
}
