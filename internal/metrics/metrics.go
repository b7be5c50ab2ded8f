package metrics

import (
	"errors"
	"io"
	"time"

	"github.com/Layr-Labs/eigenops/internal/config"
	"github.com/Layr-Labs/eigenops/internal/metrics/dogstatsd"
	"github.com/Layr-Labs/eigenops/internal/metrics/metricsTypes"
	"github.com/Layr-Labs/eigenops/internal/metrics/prometheus"
	"go.uber.org/zap"
)

// MetricsSink fans each metric out to every configured client.
// A nil *MetricsSink is valid and drops everything.
type MetricsSink struct {
	clients []metricsTypes.IMetricsClient
	config  *MetricsSinkConfig
	logger  *zap.Logger
}

type MetricsSinkConfig struct {
	DefaultLabels []metricsTypes.MetricsLabel
}

func NewMetricsSink(cfg *MetricsSinkConfig, clients []metricsTypes.IMetricsClient, l *zap.Logger) (*MetricsSink, error) {
	if cfg == nil {
		cfg = &MetricsSinkConfig{}
	}
	return &MetricsSink{
		clients: clients,
		config:  cfg,
		logger:  l,
	}, nil
}

// emit sends to every client even when one of them fails.
func (ms *MetricsSink) emit(labels []metricsTypes.MetricsLabel, send func(metricsTypes.IMetricsClient, []metricsTypes.MetricsLabel) error) error {
	if ms == nil || len(ms.clients) == 0 {
		return nil
	}
	merged := append(append(make([]metricsTypes.MetricsLabel, 0, len(ms.config.DefaultLabels)+len(labels)), ms.config.DefaultLabels...), labels...)

	var errs []error
	for _, client := range ms.clients {
		if err := send(client, merged); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (ms *MetricsSink) Incr(name string, labels []metricsTypes.MetricsLabel, value float64) error {
	return ms.emit(labels, func(c metricsTypes.IMetricsClient, l []metricsTypes.MetricsLabel) error {
		return c.Incr(name, l, value)
	})
}

func (ms *MetricsSink) Gauge(name string, value float64, labels []metricsTypes.MetricsLabel) error {
	return ms.emit(labels, func(c metricsTypes.IMetricsClient, l []metricsTypes.MetricsLabel) error {
		return c.Gauge(name, value, l)
	})
}

func (ms *MetricsSink) Timing(name string, value time.Duration, labels []metricsTypes.MetricsLabel) error {
	return ms.emit(labels, func(c metricsTypes.IMetricsClient, l []metricsTypes.MetricsLabel) error {
		return c.Timing(name, value, l)
	})
}

// Observe records the time since start. Failures are only logged.
func (ms *MetricsSink) Observe(name string, start time.Time, labels []metricsTypes.MetricsLabel) {
	ms.logFailure(name, ms.Timing(name, time.Since(start), labels))
}

// Count increments name by one. Failures are only logged.
func (ms *MetricsSink) Count(name string, labels []metricsTypes.MetricsLabel) {
	ms.logFailure(name, ms.Incr(name, labels, 1))
}

func (ms *MetricsSink) logFailure(name string, err error) {
	if err == nil || ms == nil || ms.logger == nil {
		return
	}
	ms.logger.Sugar().Debugw("Failed to emit metric", zap.String("name", name), zap.Error(err))
}

// Close releases clients that hold a buffer or a socket.
func (ms *MetricsSink) Close() error {
	if ms == nil {
		return nil
	}
	var errs []error
	for _, client := range ms.clients {
		if c, ok := client.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// InitMetricsSinksFromConfig builds a client for each backend switched on in cfg.
func InitMetricsSinksFromConfig(cfg *config.Config, l *zap.Logger) ([]metricsTypes.IMetricsClient, error) {
	var clients []metricsTypes.IMetricsClient

	if statsd := cfg.DataDogConfig.StatsdConfig; statsd.Enabled {
		dd, err := dogstatsd.NewDogStatsdMetricsClient(statsd.Url, statsd.SampleRate, l)
		if err != nil {
			return nil, err
		}
		clients = append(clients, dd)
	}

	if cfg.PrometheusConfig.Enabled {
		pm, err := prometheus.NewPrometheusMetricsClient(&prometheus.PrometheusMetricsConfig{
			Metrics: metricsTypes.MetricTypes,
		}, l)
		if err != nil {
			return nil, err
		}
		clients = append(clients, pm)
	}
	l.Sugar().Debugw("Metrics clients configured", zap.Int("count", len(clients)))
	return clients, nil
}
