package eigenlayerApi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Layr-Labs/eigenops/internal/tests"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseUrl  = "https://api.eigenops.test/v1"
	operator = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
)

func setup(t *testing.T) (*Client, *httpmock.MockTransport) {
	mt := httpmock.NewMockTransport()
	c, err := NewClient(&ClientConfig{
		BaseUrl:    baseUrl,
		ApiKey:     "secret",
		MaxRetries: 2,
		RetryWait:  time.Millisecond,
	}, tests.GetTestLogger(), WithHttpClient(&http.Client{Transport: mt}))
	require.NoError(t, err)
	return c, mt
}

func Test_Client(t *testing.T) {
	ctx := context.Background()

	t.Run("Config requires an api key", func(t *testing.T) {
		_, err := NewClient(&ClientConfig{BaseUrl: baseUrl}, tests.GetTestLogger())
		var cfgErr *errorTypes.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("Config rejects a malformed url", func(t *testing.T) {
		_, err := NewClient(&ClientConfig{BaseUrl: "not a url", ApiKey: "k"}, tests.GetTestLogger())
		require.Error(t, err)
	})

	t.Run("Sends the api key and returns the body", func(t *testing.T) {
		c, mt := setup(t)
		mt.RegisterResponder(http.MethodGet, baseUrl+"/operators/"+operator, func(r *http.Request) (*http.Response, error) {
			assert.Equal(t, "secret", r.Header.Get(ApiKeyHeader))
			return httpmock.NewStringResponse(http.StatusOK, `{"address":"`+operator+`","name":"Test Operator"}`), nil
		})

		body, err := c.GetOperator(ctx, operator)
		require.NoError(t, err)
		assert.JSONEq(t, `{"address":"`+operator+`","name":"Test Operator"}`, string(body))
	})

	t.Run("List operators passes query parameters", func(t *testing.T) {
		c, mt := setup(t)
		mt.RegisterResponderWithQuery(http.MethodGet, baseUrl+"/operators", "limit=100&status=active",
			httpmock.NewStringResponder(http.StatusOK, `{"data":[]}`))

		body, err := c.ListOperators(ctx, &ListOperatorsParams{Limit: 100, Status: "active"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[]}`, string(body))
	})

	t.Run("Invalid address fails before any request", func(t *testing.T) {
		c, mt := setup(t)
		_, err := c.GetStaker(ctx, "0x1234")
		var validation *errorTypes.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, 0, mt.GetTotalCallCount())
	})

	t.Run("Retries on 429 and 5xx", func(t *testing.T) {
		c, mt := setup(t)
		url := baseUrl + "/avs/" + operator
		mt.RegisterResponder(http.MethodGet, url,
			httpmock.NewStringResponder(http.StatusTooManyRequests, "slow down").
				Then(httpmock.NewStringResponder(http.StatusBadGateway, "")).
				Then(httpmock.NewStringResponder(http.StatusOK, `{"ok":true}`)))

		body, err := c.GetAvs(ctx, operator)
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":true}`, string(body))
		assert.Equal(t, 3, mt.GetCallCountInfo()["GET "+url])
	})

	t.Run("Client errors are not retried", func(t *testing.T) {
		c, mt := setup(t)
		url := baseUrl + "/stakers/" + operator
		mt.RegisterResponder(http.MethodGet, url, httpmock.NewStringResponder(http.StatusNotFound, `{"message":"not found"}`))

		_, err := c.GetStaker(ctx, operator)
		var apiErr *ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "not found")
		assert.Equal(t, 1, mt.GetCallCountInfo()["GET "+url])
	})

	t.Run("Gives up after the retry budget", func(t *testing.T) {
		c, mt := setup(t)
		url := baseUrl + "/operators/" + operator
		mt.RegisterResponder(http.MethodGet, url, httpmock.NewStringResponder(http.StatusServiceUnavailable, "down"))

		_, err := c.GetOperator(ctx, operator)
		var apiErr *ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		assert.Equal(t, 3, mt.GetCallCountInfo()["GET "+url])
	})
}
