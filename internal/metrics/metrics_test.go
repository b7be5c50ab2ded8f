package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/Layr-Labs/eigenops/internal/logger"
	"github.com/Layr-Labs/eigenops/internal/metrics/metricsTypes"
	"github.com/Layr-Labs/eigenops/internal/metrics/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type recordingClient struct {
	incrs   map[string]float64
	labels  map[string][]metricsTypes.MetricsLabel
	timings int
	fail    error
	closed  bool
}

func newRecordingClient() *recordingClient {
	return &recordingClient{incrs: map[string]float64{}, labels: map[string][]metricsTypes.MetricsLabel{}}
}

func (r *recordingClient) Close() error {
	r.closed = true
	return nil
}

func (r *recordingClient) Incr(name string, labels []metricsTypes.MetricsLabel, value float64) error {
	if r.fail != nil {
		return r.fail
	}
	r.incrs[name] += value
	r.labels[name] = labels
	return nil
}

func (r *recordingClient) Gauge(name string, value float64, labels []metricsTypes.MetricsLabel) error {
	r.incrs[name] = value
	return nil
}

func (r *recordingClient) Timing(name string, value time.Duration, labels []metricsTypes.MetricsLabel) error {
	r.timings++
	return nil
}

func Test_MetricsSink(t *testing.T) {
	l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})

	t.Run("Should fan out to every client with default labels", func(t *testing.T) {
		rc := newRecordingClient()
		sink, err := NewMetricsSink(&MetricsSinkConfig{
			DefaultLabels: []metricsTypes.MetricsLabel{{Name: "app", Value: "eigenops"}},
		}, []metricsTypes.IMetricsClient{rc}, l)
		assert.Nil(t, err)

		sink.Count(metricsTypes.Metric_Incr_OperationInvoked, []metricsTypes.MetricsLabel{{Name: "operation", Value: "strategy.getTotalShares"}})
		sink.Count(metricsTypes.Metric_Incr_OperationInvoked, []metricsTypes.MetricsLabel{{Name: "operation", Value: "strategy.getTotalShares"}})
		sink.Observe(metricsTypes.Metric_Timing_OperationDuration, time.Now(), nil)

		assert.Equal(t, float64(2), rc.incrs[metricsTypes.Metric_Incr_OperationInvoked])
		assert.Len(t, rc.labels[metricsTypes.Metric_Incr_OperationInvoked], 2)
		assert.Equal(t, 1, rc.timings)
	})
	t.Run("A failing client does not starve the others", func(t *testing.T) {
		bad, good := newRecordingClient(), newRecordingClient()
		bad.fail = errors.New("agent unreachable")
		sink, _ := NewMetricsSink(nil, []metricsTypes.IMetricsClient{bad, good}, l)

		err := sink.Incr(metricsTypes.Metric_Incr_RpcRetry, nil, 1)
		assert.ErrorIs(t, err, bad.fail)
		assert.Equal(t, float64(1), good.incrs[metricsTypes.Metric_Incr_RpcRetry])

		assert.NoError(t, sink.Close())
		assert.True(t, bad.closed)
		assert.True(t, good.closed)
	})
	t.Run("A nil sink drops metrics", func(t *testing.T) {
		var sink *MetricsSink
		assert.Nil(t, sink.Incr("x", nil, 1))
		assert.Nil(t, sink.Gauge("x", 1, nil))
		assert.Nil(t, sink.Close())
		sink.Count("x", nil)
	})
	t.Run("Prometheus clients on one registry share vectors", func(t *testing.T) {
		reg := prom.NewRegistry()
		cfg := func() *prometheus.PrometheusMetricsConfig {
			return &prometheus.PrometheusMetricsConfig{Metrics: metricsTypes.MetricTypes, Registerer: reg}
		}
		first, err := prometheus.NewPrometheusMetricsClient(cfg(), l)
		assert.Nil(t, err)
		second, err := prometheus.NewPrometheusMetricsClient(cfg(), l)
		assert.Nil(t, err)

		labels := []metricsTypes.MetricsLabel{{Name: "method", Value: "eth_call"}}
		assert.Nil(t, first.Incr(metricsTypes.Metric_Incr_RpcRequest, labels, 1))
		assert.Nil(t, second.Incr(metricsTypes.Metric_Incr_RpcRequest, labels, 2))

		count, err := testutil.GatherAndCount(reg, "eigenops_rpc_request")
		assert.Nil(t, err)
		assert.Equal(t, 1, count)
	})
	t.Run("Prometheus client tolerates undeclared labels", func(t *testing.T) {
		reg := prom.NewRegistry()
		pm, err := prometheus.NewPrometheusMetricsClient(&prometheus.PrometheusMetricsConfig{
			Metrics:    metricsTypes.MetricTypes,
			Registerer: reg,
		}, l)
		assert.Nil(t, err)

		sink, _ := NewMetricsSink(&MetricsSinkConfig{}, []metricsTypes.IMetricsClient{pm}, l)
		err = sink.Incr(metricsTypes.Metric_Incr_PollerEvents, []metricsTypes.MetricsLabel{
			{Name: "event", Value: "Deposit"},
			{Name: "network", Value: "mainnet"},
			{Name: "unexpected", Value: "dropped"},
		}, 3)
		assert.Nil(t, err)
		assert.Nil(t, sink.Gauge(metricsTypes.Metric_Gauge_PollerCursor, 42, nil))

		count, err := testutil.GatherAndCount(reg, "eigenops_poller_events", "eigenops_poller_cursor")
		assert.Nil(t, err)
		assert.Equal(t, 2, count)
	})
}
