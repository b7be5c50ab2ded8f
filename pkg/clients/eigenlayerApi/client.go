// Package eigenlayerApi is a small client for the EigenLayer REST API.
package eigenlayerApi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	DefaultBaseUrl = "https://holesky-api.eigenlayer.xyz/v1"
	ApiKeyHeader   = "x-api-key"
)

type ClientConfig struct {
	BaseUrl    string        `validate:"required,url"`
	ApiKey     string        `validate:"required"`
	Timeout    time.Duration `validate:"gte=0"`
	MaxRetries int           `validate:"gte=0,lte=10"`
	RetryWait  time.Duration `validate:"gte=0"`
}

func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		BaseUrl:    DefaultBaseUrl,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryWait:  time.Second,
	}
}

type Client struct {
	config *ClientConfig
	http   *resty.Client
	logger *zap.Logger
}

// ApiError is a non-2xx response.
type ApiError struct {
	StatusCode int
	Body       string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("eigenlayer api returned %d: %s", e.StatusCode, e.Body)
}

var validate = validator.New()

type ClientOption func(*options)

type options struct {
	httpClient *http.Client
}

// WithHttpClient replaces the transport, mostly for tests.
func WithHttpClient(hc *http.Client) ClientOption {
	return func(o *options) {
		o.httpClient = hc
	}
}

func isRetryable(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
}

func NewClient(cfg *ClientConfig, l *zap.Logger, opts ...ClientOption) (*Client, error) {
	if cfg == nil {
		cfg = DefaultClientConfig()
	}
	if cfg.BaseUrl == "" {
		cfg.BaseUrl = DefaultBaseUrl
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, errorTypes.NewConfigurationError("eigenlayerApi", "Invalid EigenLayer API config: %v", err)
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	rc := resty.New()
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	}
	rc.SetBaseURL(strings.TrimSuffix(cfg.BaseUrl, "/")).
		SetHeaders(map[string]string{
			ApiKeyHeader:   cfg.ApiKey,
			"Accept":       "application/json",
			"Content-Type": "application/json",
		}).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryWait * 10).
		AddRetryCondition(isRetryable).
		AddRetryHook(func(r *resty.Response, err error) {
			if r == nil || r.Request == nil {
				return
			}
			l.Sugar().Warnw("Retrying EigenLayer API request",
				zap.String("url", r.Request.URL),
				zap.Int("status", r.StatusCode()),
				zap.Int("attempt", r.Request.Attempt),
				zap.Error(err),
			)
		})
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}
	return &Client{config: cfg, http: rc, logger: l}, nil
}

// Get issues a GET against path relative to the base URL and returns the raw JSON body.
func (c *Client) Get(ctx context.Context, path string, query map[string]string) (json.RawMessage, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get("/" + strings.TrimPrefix(path, "/"))
	if err != nil {
		c.logger.Sugar().Errorw("Get - request failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	if res.IsError() {
		return nil, &ApiError{StatusCode: res.StatusCode(), Body: string(res.Body())}
	}
	body := res.Body()
	if !json.Valid(body) {
		return nil, &errorTypes.DecodeError{Method: path, Err: fmt.Errorf("response is not JSON")}
	}
	return body, nil
}

type ListOperatorsParams struct {
	Limit  int
	Offset int
	Status string
}

func (c *Client) ListOperators(ctx context.Context, p *ListOperatorsParams) (json.RawMessage, error) {
	query := map[string]string{}
	if p != nil {
		if p.Limit > 0 {
			query["limit"] = strconv.Itoa(p.Limit)
		}
		if p.Offset > 0 {
			query["offset"] = strconv.Itoa(p.Offset)
		}
		if p.Status != "" {
			query["status"] = p.Status
		}
	}
	return c.Get(ctx, "/operators", query)
}

func (c *Client) GetOperator(ctx context.Context, address string) (json.RawMessage, error) {
	return c.getByAddress(ctx, "operators", address)
}

func (c *Client) GetStaker(ctx context.Context, address string) (json.RawMessage, error) {
	return c.getByAddress(ctx, "stakers", address)
}

func (c *Client) GetAvs(ctx context.Context, address string) (json.RawMessage, error) {
	return c.getByAddress(ctx, "avs", address)
}

func (c *Client) getByAddress(ctx context.Context, resource string, address string) (json.RawMessage, error) {
	if !common.IsHexAddress(address) {
		return nil, errorTypes.NewValidationError("address", "Invalid address: %s", address)
	}
	return c.Get(ctx, fmt.Sprintf("/%s/%s", resource, address), nil)
}
