package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type PrometheusServerConfig struct {
	Port int
	// Gatherer defaults to the global prometheus registry.
	Gatherer prometheus.Gatherer
}

// PrometheusServer exposes /metrics while a poll or backfill runs.
type PrometheusServer struct {
	config     *PrometheusServerConfig
	logger     *zap.Logger
	httpServer *http.Server
	addr       net.Addr
}

func NewPrometheusServer(cfg *PrometheusServerConfig, l *zap.Logger) *PrometheusServer {
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}
	return &PrometheusServer{
		config: cfg,
		logger: l,
	}
}

// Start binds the port before returning so a port conflict fails the command.
func (ps *PrometheusServer) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", ps.config.Port))
	if err != nil {
		return fmt.Errorf("failed to bind prometheus port %d: %w", ps.config.Port, err)
	}
	ps.addr = ln.Addr()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(ps.config.Gatherer, promhttp.HandlerOpts{}))
	ps.httpServer = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ps.logger.Sugar().Infow("Serving prometheus metrics", zap.String("addr", ps.addr.String()))
	go func() {
		if err := ps.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ps.logger.Sugar().Errorw("Prometheus server stopped", zap.Error(err))
		}
	}()
	return nil
}

// Addr is the bound address, nil before Start.
func (ps *PrometheusServer) Addr() net.Addr {
	return ps.addr
}

func (ps *PrometheusServer) Shutdown(ctx context.Context) {
	if ps.httpServer == nil {
		return
	}
	if err := ps.httpServer.Shutdown(ctx); err != nil {
		ps.logger.Sugar().Errorw("Failed to shutdown prometheus server", zap.Error(err))
	}
}
