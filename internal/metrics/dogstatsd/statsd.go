package dogstatsd

import (
	"strings"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/Layr-Labs/eigenops/internal/metrics/metricsTypes"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const flushInterval = 2 * time.Second

// DogStatsdMetricsClient buffers metrics and ships them to a statsd agent.
// Close must be called before exit or the last buffer is lost.
type DogStatsdMetricsClient struct {
	client     statsd.ClientInterface
	logger     *zap.Logger
	sampleRate float64
}

func NewDogStatsdMetricsClient(addr string, sampleRate float64, l *zap.Logger) (*DogStatsdMetricsClient, error) {
	s, err := statsd.New(addr,
		statsd.WithNamespace("eigenops."),
		statsd.WithBufferFlushInterval(flushInterval),
		statsd.WithoutTelemetry(),
	)
	if err != nil {
		l.Sugar().Errorw("Failed to create dogstatsd metrics client", zap.String("addr", addr), zap.Error(err))
		return nil, err
	}
	return newWithClient(s, sampleRate, l), nil
}

func newWithClient(c statsd.ClientInterface, sampleRate float64, l *zap.Logger) *DogStatsdMetricsClient {
	if sampleRate <= 0 || sampleRate > 1 {
		sampleRate = 1
	}
	return &DogStatsdMetricsClient{
		client:     c,
		logger:     l,
		sampleRate: sampleRate,
	}
}

// tags renders labels as name:value, skipping blank values and replacing the tag separator.
func tags(labels []metricsTypes.MetricsLabel) []string {
	present := lo.Filter(labels, func(l metricsTypes.MetricsLabel, _ int) bool {
		return l.Value != ""
	})
	return lo.Map(present, func(l metricsTypes.MetricsLabel, _ int) string {
		return l.Name + ":" + strings.ReplaceAll(l.Value, ",", "_")
	})
}

func (s *DogStatsdMetricsClient) Incr(name string, labels []metricsTypes.MetricsLabel, value float64) error {
	return s.client.Count(name, int64(value), tags(labels), s.sampleRate)
}

func (s *DogStatsdMetricsClient) Gauge(name string, value float64, labels []metricsTypes.MetricsLabel) error {
	return s.client.Gauge(name, value, tags(labels), s.sampleRate)
}

func (s *DogStatsdMetricsClient) Timing(name string, value time.Duration, labels []metricsTypes.MetricsLabel) error {
	return s.client.Timing(name, value, tags(labels), s.sampleRate)
}

// Close flushes the buffer and releases the socket.
func (s *DogStatsdMetricsClient) Close() error {
	if err := s.client.Flush(); err != nil {
		s.logger.Sugar().Warnw("Failed to flush dogstatsd metrics", zap.Error(err))
	}
	return s.client.Close()
}
