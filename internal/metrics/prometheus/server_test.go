package prometheus

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/Layr-Labs/eigenops/internal/logger"
	"github.com/Layr-Labs/eigenops/internal/metrics/metricsTypes"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PrometheusServer(t *testing.T) {
	l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	reg := prometheus.NewRegistry()

	client, err := NewPrometheusMetricsClient(&PrometheusMetricsConfig{Metrics: metricsTypes.MetricTypes, Registerer: reg}, l)
	require.NoError(t, err)
	require.NoError(t, client.Incr(metricsTypes.Metric_Incr_OperationInvoked, []metricsTypes.MetricsLabel{
		{Name: "operation", Value: "delegation.isOperator"},
	}, 1))

	srv := NewPrometheusServer(&PrometheusServerConfig{Port: 0, Gatherer: reg}, l)
	require.NoError(t, srv.Start())
	defer srv.Shutdown(context.Background())

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/metrics", srv.Addr().(*net.TCPAddr).Port))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "eigenops_operation_invoked{")
	assert.Contains(t, string(body), `operation="delegation.isOperator"`)
}
