package prometheus

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Layr-Labs/eigenops/internal/metrics/metricsTypes"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const namespace = "eigenops"

// timing histograms are in milliseconds, 5ms to roughly 10s
var timingBuckets = prometheus.ExponentialBuckets(5, 2, 12)

type PrometheusMetricsConfig struct {
	Metrics map[metricsTypes.MetricsType][]metricsTypes.MetricsTypeConfig
	// Registerer defaults to the global prometheus registry.
	Registerer prometheus.Registerer
}

type series struct {
	kind      metricsTypes.MetricsType
	labels    []string
	counter   *prometheus.CounterVec
	gauge     *prometheus.GaugeVec
	histogram *prometheus.HistogramVec
}

type PrometheusMetricsClient struct {
	logger *zap.Logger
	config *PrometheusMetricsConfig
	series map[string]*series
}

func NewPrometheusMetricsClient(config *PrometheusMetricsConfig, l *zap.Logger) (*PrometheusMetricsClient, error) {
	if config.Registerer == nil {
		config.Registerer = prometheus.DefaultRegisterer
	}
	client := &PrometheusMetricsClient{
		config: config,
		logger: l,
		series: make(map[string]*series),
	}
	for kind, defs := range config.Metrics {
		for _, def := range defs {
			if err := client.declare(kind, def); err != nil {
				return nil, err
			}
		}
	}
	return client, nil
}

// metricName turns "poller.events" into "poller_events".
func metricName(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

func (pmc *PrometheusMetricsClient) declare(kind metricsTypes.MetricsType, def metricsTypes.MetricsTypeConfig) error {
	if existing, ok := pmc.series[def.Name]; ok {
		pmc.logger.Sugar().Warnw("Metric declared twice",
			zap.String("name", def.Name),
			zap.String("kind", string(kind)),
			zap.String("existingKind", string(existing.kind)),
		)
		return nil
	}
	s := &series{kind: kind, labels: def.Labels}
	name := metricName(def.Name)
	help := fmt.Sprintf("eigenops %s %s", kind, def.Name)

	var collector prometheus.Collector
	switch kind {
	case metricsTypes.MetricsType_Incr:
		s.counter = prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help}, def.Labels)
		collector = s.counter
	case metricsTypes.MetricsType_Gauge:
		s.gauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help}, def.Labels)
		collector = s.gauge
	case metricsTypes.MetricsType_Timing:
		s.histogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: name + "_ms", Help: help, Buckets: timingBuckets}, def.Labels)
		collector = s.histogram
	default:
		return fmt.Errorf("unknown metric kind '%s' for %s", kind, def.Name)
	}

	if err := pmc.config.Registerer.Register(collector); err != nil {
		// a second client on the same registry shares the first one's vectors
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return err
		}
		switch existing := already.ExistingCollector.(type) {
		case *prometheus.CounterVec:
			s.counter = existing
		case *prometheus.GaugeVec:
			s.gauge = existing
		case *prometheus.HistogramVec:
			s.histogram = existing
		default:
			return err
		}
	}
	pmc.series[def.Name] = s
	return nil
}

// lookup returns the declared series and its label set. Undeclared labels are dropped
// and missing ones are blank, since a vec panics on a mismatched label set.
func (pmc *PrometheusMetricsClient) lookup(name string, kind metricsTypes.MetricsType, labels []metricsTypes.MetricsLabel) (*series, prometheus.Labels) {
	s, ok := pmc.series[name]
	if !ok || s.kind != kind {
		pmc.logger.Sugar().Warnw("Undeclared metric", zap.String("name", name), zap.String("kind", string(kind)))
		return nil, nil
	}
	out := make(prometheus.Labels, len(s.labels))
	for _, n := range s.labels {
		out[n] = ""
	}
	for _, label := range labels {
		if _, ok := out[label.Name]; ok {
			out[label.Name] = label.Value
		}
	}
	return s, out
}

func (pmc *PrometheusMetricsClient) Incr(name string, labels []metricsTypes.MetricsLabel, value float64) error {
	if s, l := pmc.lookup(name, metricsTypes.MetricsType_Incr, labels); s != nil {
		s.counter.With(l).Add(value)
	}
	return nil
}

func (pmc *PrometheusMetricsClient) Gauge(name string, value float64, labels []metricsTypes.MetricsLabel) error {
	if s, l := pmc.lookup(name, metricsTypes.MetricsType_Gauge, labels); s != nil {
		s.gauge.With(l).Set(value)
	}
	return nil
}

func (pmc *PrometheusMetricsClient) Timing(name string, value time.Duration, labels []metricsTypes.MetricsLabel) error {
	if s, l := pmc.lookup(name, metricsTypes.MetricsType_Timing, labels); s != nil {
		s.histogram.With(l).Observe(float64(value.Milliseconds()))
	}
	return nil
}
