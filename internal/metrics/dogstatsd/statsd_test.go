package dogstatsd

import (
	"testing"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/Layr-Labs/eigenops/internal/logger"
	"github.com/Layr-Labs/eigenops/internal/metrics/metricsTypes"
	"github.com/stretchr/testify/assert"
)

func Test_Tags(t *testing.T) {
	got := tags([]metricsTypes.MetricsLabel{
		{Name: "operation", Value: "strategy.getTotalShares"},
		{Name: "network", Value: ""},
		{Name: "event", Value: "a,b"},
	})
	assert.Equal(t, []string{"operation:strategy.getTotalShares", "event:a_b"}, got)
}

func Test_DogStatsdMetricsClient(t *testing.T) {
	l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})

	t.Run("Out of range sample rates fall back to 1", func(t *testing.T) {
		assert.Equal(t, float64(1), newWithClient(&statsd.NoOpClient{}, 0, l).sampleRate)
		assert.Equal(t, float64(1), newWithClient(&statsd.NoOpClient{}, 4, l).sampleRate)
		assert.Equal(t, 0.25, newWithClient(&statsd.NoOpClient{}, 0.25, l).sampleRate)
	})
	t.Run("Forwards to the statsd client", func(t *testing.T) {
		c := newWithClient(&statsd.NoOpClient{}, 1, l)
		assert.NoError(t, c.Incr(metricsTypes.Metric_Incr_RpcRequest, nil, 1))
		assert.NoError(t, c.Gauge(metricsTypes.Metric_Gauge_PollerCursor, 10, nil))
		assert.NoError(t, c.Timing(metricsTypes.Metric_Timing_RpcDuration, time.Millisecond, nil))
		assert.NoError(t, c.Close())
	})
}
