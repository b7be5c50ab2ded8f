package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Layr-Labs/eigenops/internal/config"
	"github.com/Layr-Labs/eigenops/internal/logger"
	"github.com/Layr-Labs/eigenops/internal/metrics"
	"github.com/Layr-Labs/eigenops/internal/metrics/metricsTypes"
	"github.com/Layr-Labs/eigenops/internal/metrics/prometheus"
	"github.com/Layr-Labs/eigenops/pkg/clients/ethereum"
	"github.com/Layr-Labs/eigenops/pkg/contractCaller"
	"github.com/Layr-Labs/eigenops/pkg/operations"
	"github.com/Layr-Labs/eigenops/pkg/signer"
	"github.com/Layr-Labs/eigenops/pkg/transactions"
	"go.uber.org/zap"
)

// app is the process-wide wiring shared by the subcommands.
type app struct {
	cfg         *config.Config
	logger      *zap.Logger
	metricsSink *metrics.MetricsSink
	providers   *ethereum.ProviderFactory
	promServer  *prometheus.PrometheusServer
}

func newApp() (*app, error) {
	cfg := config.NewConfig()

	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
	if err != nil {
		return nil, err
	}
	if _, err := cfg.ParsedNetwork(); err != nil {
		return nil, err
	}

	clients, err := metrics.InitMetricsSinksFromConfig(cfg, l)
	if err != nil {
		l.Sugar().Errorw("Failed to setup metrics sink", zap.Error(err))
		return nil, err
	}
	sink, err := metrics.NewMetricsSink(&metrics.MetricsSinkConfig{
		DefaultLabels: []metricsTypes.MetricsLabel{{Name: "network", Value: cfg.Network}},
	}, clients, l)
	if err != nil {
		return nil, err
	}

	var promServer *prometheus.PrometheusServer
	if cfg.PrometheusConfig.Enabled {
		promServer = prometheus.NewPrometheusServer(&prometheus.PrometheusServerConfig{
			Port: cfg.PrometheusConfig.Port,
		}, l)
		if err := promServer.Start(); err != nil {
			return nil, err
		}
	}

	template := ethereum.DefaultEthereumClientConfig()
	template.RequestsPerSecond = cfg.Rpc.RequestsPerSecond
	if cfg.Rpc.BatchSize > 0 {
		template.NativeBatchCallSize = cfg.Rpc.BatchSize
	}
	template.Retry.OnRetry = func(retry int, err error, delay time.Duration) {
		l.Sugar().Warnw("Retrying RPC request",
			zap.Int("retry", retry),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
	}
	providers, err := ethereum.NewProviderFactory(&ethereum.ProviderFactoryConfig{
		CacheSize: cfg.Rpc.CacheSize,
		Template:  template,
		Options:   []ethereum.ClientOption{ethereum.WithMetrics(sink)},
	}, l)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:         cfg,
		logger:      l,
		metricsSink: sink,
		providers:   providers,
		promServer:  promServer,
	}, nil
}

func (a *app) Close() {
	a.providers.Close()
	if err := a.metricsSink.Close(); err != nil {
		a.logger.Sugar().Warnw("Failed to close metrics clients", zap.Error(err))
	}
	if a.promServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.promServer.Shutdown(ctx)
	}
	_ = a.logger.Sync()
}

func (a *app) connectionCredential() *ethereum.ConnectionCredential {
	return &ethereum.ConnectionCredential{
		Provider:     ethereum.ProviderType(a.cfg.Rpc.Provider),
		ApiKey:       a.cfg.Rpc.ApiKey,
		CustomRpcUrl: a.cfg.Rpc.CustomUrl,
		Network:      a.cfg.Network,
	}
}

// credentials serves the configured RPC credential and, when a signing method is set, the signer.
func (a *app) credentials() *operations.StaticCredentials {
	creds := &operations.StaticCredentials{Connection: a.connectionCredential()}
	if a.cfg.Signer.Method != "" {
		creds.Signing = &signer.SigningCredential{
			Method:         signer.SigningMethod(a.cfg.Signer.Method),
			PrivateKey:     a.cfg.Signer.PrivateKey,
			Mnemonic:       a.cfg.Signer.Mnemonic,
			DerivationPath: a.cfg.Signer.DerivationPath,
		}
	}
	return creds
}

func (a *app) executor() *operations.Executor {
	wait := transactions.DefaultWaitOptions()
	if a.cfg.Gas.ConfirmationTimeout > 0 {
		wait.Timeout = a.cfg.Gas.ConfirmationTimeout
	}
	if a.cfg.Gas.Confirmations > 0 {
		wait.Confirmations = uint64(a.cfg.Gas.Confirmations)
	}
	return operations.NewExecutor(&operations.ExecutorConfig{
		DefaultNetwork:   a.cfg.Network,
		GasBufferPercent: a.cfg.Gas.BufferPercent,
		Wait:             wait,
		Batch: &contractCaller.BatchOptions{
			ChunkSize:   a.cfg.Multicall.ChunkSize,
			Concurrency: a.cfg.Multicall.Concurrency,
		},
		Sequential: a.cfg.Multicall.Sequential,
	}, a.providers, a.metricsSink, a.logger)
}

func (a *app) provider() (*ethereum.Client, error) {
	return a.providers.GetProvider(a.connectionCredential())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fatal(l *zap.Logger, msg string, err error) error {
	if l != nil {
		l.Sugar().Errorw(msg, zap.Error(err))
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	return err
}
