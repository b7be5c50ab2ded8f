package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Layr-Labs/eigenops/internal/metrics"
	"github.com/Layr-Labs/eigenops/internal/metrics/metricsTypes"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type RPCRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      uint   `json:"id"`
}

type RPCError struct {
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *uint           `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

var jsonRPCVersion = "2.0"

type EthereumClientConfig struct {
	BaseUrl string
	// ChainId is pinned; the endpoint is never asked for it outside ValidateConnection.
	ChainId uint64
	Network string
	// NativeBatchCallSize is the number of requests placed in one JSON-RPC batch.
	NativeBatchCallSize int
	// BatchConcurrency bounds the number of batches in flight.
	BatchConcurrency int
	// RequestsPerSecond enables client-side rate limiting when > 0.
	RequestsPerSecond float64
	Retry             *RetryConfig
	RequestTimeout    time.Duration
}

func DefaultEthereumClientConfig() *EthereumClientConfig {
	return &EthereumClientConfig{
		NativeBatchCallSize: 10,
		BatchConcurrency:    5,
		Retry:               DefaultRetryConfig(),
		RequestTimeout:      time.Second * 30,
	}
}

type Client struct {
	Logger       *zap.Logger
	httpClient   *http.Client
	clientConfig *EthereumClientConfig
	metricsSink  *metrics.MetricsSink
	limiter      *rate.Limiter

	rpcClient *rpc.Client
	eth       *ethclient.Client
}

type ClientOption func(c *Client)

// WithHttpClient replaces the transport used for both the go-ethereum client and raw batches.
func WithHttpClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithMetrics(ms *metrics.MetricsSink) ClientOption {
	return func(c *Client) {
		c.metricsSink = ms
	}
}

func NewClient(cfg *EthereumClientConfig, l *zap.Logger, opts ...ClientOption) (*Client, error) {
	defaults := DefaultEthereumClientConfig()
	if cfg.NativeBatchCallSize <= 0 {
		cfg.NativeBatchCallSize = defaults.NativeBatchCallSize
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = defaults.BatchConcurrency
	}
	if cfg.Retry == nil {
		cfg.Retry = defaults.Retry
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaults.RequestTimeout
	}
	if cfg.BaseUrl == "" {
		return nil, errorTypes.NewConfigurationError("url", "RPC url is required")
	}

	c := &Client{
		Logger:       l,
		clientConfig: cfg,
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	// dialing an http endpoint does not touch the network
	rpcClient, err := rpc.DialOptions(context.Background(), cfg.BaseUrl, rpc.WithHTTPClient(c.httpClient))
	if err != nil {
		l.Sugar().Errorw("NewClient - failed to create rpc client", zap.Error(err))
		return nil, errorTypes.NewConfigurationError("url", "Invalid RPC url: %v", err)
	}
	c.rpcClient = rpcClient
	c.eth = ethclient.NewClient(rpcClient)

	l.Sugar().Debugw("Created ethereum client",
		zap.String("network", cfg.Network),
		zap.Uint64("chainId", cfg.ChainId),
	)
	return c, nil
}

func (c *Client) PinnedChainId() uint64 {
	return c.clientConfig.ChainId
}

func (c *Client) Network() string {
	return c.clientConfig.Network
}

func (c *Client) Url() string {
	return c.clientConfig.BaseUrl
}

// EthClient exposes the underlying go-ethereum client for calls that need no retry wrapping.
func (c *Client) EthClient() *ethclient.Client {
	return c.eth
}

func (c *Client) Close() {
	c.rpcClient.Close()
}

// do runs fn through the rate limiter and the retry policy, recording request metrics.
func (c *Client) do(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	labels := []metricsTypes.MetricsLabel{{Name: "method", Value: method}}
	start := time.Now()
	c.metricsSink.Count(metricsTypes.Metric_Incr_RpcRequest, labels)
	defer c.metricsSink.Observe(metricsTypes.Metric_Timing_RpcDuration, start, labels)

	retryCfg := *c.clientConfig.Retry
	userOnRetry := retryCfg.OnRetry
	retryCfg.OnRetry = func(retry int, err error, delay time.Duration) {
		c.metricsSink.Count(metricsTypes.Metric_Incr_RpcRetry, nil)
		c.Logger.Sugar().Warnw("Retrying rpc call",
			zap.String("method", method),
			zap.Int("retry", retry),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if userOnRetry != nil {
			userOnRetry(retry, err, delay)
		}
	}

	_, err := WithRetry(ctx, &retryCfg, func(ctx context.Context) (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, fn(ctx)
	})
	return err
}

func (c *Client) batchCall(ctx context.Context, requests []*RPCRequest) ([]*RPCResponse, error) {
	if len(requests) == 0 {
		return make([]*RPCResponse, 0), nil
	}
	requestBody, err := json.Marshal(requests)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal requests")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.clientConfig.BaseUrl, bytes.NewReader(requestBody))
	if err != nil {
		return nil, errors.Wrap(err, "failed to make request")
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read body")
	}

	if response.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("received http error code 429: too many requests")
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received http error code %d: %s", response.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	trimmed := bytes.TrimSpace(responseBody)
	if bytes.HasPrefix(trimmed, []byte("{")) {
		errorResponse := RPCResponse{}
		if err := json.Unmarshal(trimmed, &errorResponse); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal error response")
		}
		if errorResponse.Error != nil {
			return nil, errors.Errorf("error payload returned from batch call: %s", errorResponse.Error.Message)
		}
		return nil, errors.Errorf("unexpected non-batch response: %s", string(trimmed))
	}

	destination := []*RPCResponse{}
	if err := json.Unmarshal(trimmed, &destination); err != nil {
		c.Logger.Sugar().Errorw("batchCall - failed to unmarshal batch call response",
			zap.Error(err),
			zap.String("response", string(responseBody)),
		)
		return nil, errors.Wrap(err, "failed to unmarshal response")
	}
	return destination, nil
}

// BatchCall sends requests as JSON-RPC batches of NativeBatchCallSize with at most BatchConcurrency
// batches in flight. Responses are returned in request order; request IDs are reassigned to their index.
func (c *Client) BatchCall(ctx context.Context, requests []*RPCRequest) ([]*RPCResponse, error) {
	if len(requests) == 0 {
		c.Logger.Sugar().Warnw("No requests to batch call")
		return make([]*RPCResponse, 0), nil
	}
	for i, r := range requests {
		r.ID = uint(i)
		if r.JSONRPC == "" {
			r.JSONRPC = jsonRPCVersion
		}
	}
	batches := lo.Chunk(requests, c.clientConfig.NativeBatchCallSize)
	c.Logger.Sugar().Debugw(fmt.Sprintf("Batching '%v' requests into '%v' batches", len(requests), len(batches)))

	results := make([]*RPCResponse, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.clientConfig.BatchConcurrency)
	for i, batch := range batches {
		g.Go(func() error {
			var res []*RPCResponse
			err := c.do(gctx, "batch", func(ctx context.Context) error {
				var err error
				res, err = c.batchCall(ctx, batch)
				return err
			})
			if err != nil {
				c.Logger.Sugar().Errorw("BatchCall - failed to batch call", zap.Int("batch", i), zap.Error(err))
				return err
			}
			for _, r := range res {
				if r.ID == nil || int(*r.ID) >= len(results) {
					return errors.Errorf("batch response carried an unknown id")
				}
				results[*r.ID] = r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, r := range results {
		if r == nil {
			return nil, errors.Errorf("missing response for request %d (%s)", i, requests[i].Method)
		}
	}
	return results, nil
}
