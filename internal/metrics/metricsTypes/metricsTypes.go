package metricsTypes

import "time"

type IMetricsClient interface {
	Incr(name string, labels []MetricsLabel, value float64) error
	Gauge(name string, value float64, labels []MetricsLabel) error
	Timing(name string, value time.Duration, labels []MetricsLabel) error
}

type MetricsLabel struct {
	Name  string
	Value string
}

type MetricsType string

var (
	MetricsType_Incr   MetricsType = "incr"
	MetricsType_Gauge  MetricsType = "gauge"
	MetricsType_Timing MetricsType = "timing"
)

type MetricsTypeConfig struct {
	Name   string
	Labels []string
}

var (
	Metric_Incr_RpcRequest       = "rpc.request"
	Metric_Incr_RpcRetry         = "rpc.retry"
	Metric_Incr_OperationInvoked = "operation.invoked"
	Metric_Incr_OperationFailed  = "operation.failed"
	Metric_Incr_PollerEvents     = "poller.events"

	Metric_Gauge_PollerCursor = "poller.cursor"

	Metric_Timing_RpcDuration       = "rpc.duration"
	Metric_Timing_OperationDuration = "operation.duration"
)

var MetricTypes = map[MetricsType][]MetricsTypeConfig{
	MetricsType_Incr: {
		MetricsTypeConfig{
			Name:   Metric_Incr_RpcRequest,
			Labels: []string{"method"},
		},
		MetricsTypeConfig{
			Name:   Metric_Incr_RpcRetry,
			Labels: []string{},
		},
		MetricsTypeConfig{
			Name:   Metric_Incr_OperationInvoked,
			Labels: []string{"operation", "network"},
		},
		MetricsTypeConfig{
			Name:   Metric_Incr_OperationFailed,
			Labels: []string{"operation", "network"},
		},
		MetricsTypeConfig{
			Name:   Metric_Incr_PollerEvents,
			Labels: []string{"event", "network"},
		},
	},
	MetricsType_Gauge: {
		MetricsTypeConfig{
			Name:   Metric_Gauge_PollerCursor,
			Labels: []string{"event", "network"},
		},
	},
	MetricsType_Timing: {
		MetricsTypeConfig{
			Name:   Metric_Timing_RpcDuration,
			Labels: []string{"method"},
		},
		MetricsTypeConfig{
			Name:   Metric_Timing_OperationDuration,
			Labels: []string{"operation", "network"},
		},
	},
}
