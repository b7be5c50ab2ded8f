package tests

import (
	"testing"
	"time"

	"github.com/Layr-Labs/eigenops/internal/config"
	"github.com/Layr-Labs/eigenops/internal/logger"
	"github.com/Layr-Labs/eigenops/internal/sqlite"
	"github.com/Layr-Labs/eigenops/internal/tests/rpcmock"
	"github.com/Layr-Labs/eigenops/pkg/clients/ethereum"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const MockRpcUrl = "https://rpc.eigenops.test"

func GetConfig() *config.Config {
	return config.NewConfig()
}

func GetTestLogger() *zap.Logger {
	l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	return l
}

// GetMockEthereumClient builds a client for network whose transport is served by mock.
func GetMockEthereumClient(t *testing.T, mock *rpcmock.RpcMock, network string) *ethereum.Client {
	t.Helper()
	chainId, err := registry.ResolveChainId(network)
	if err != nil {
		t.Fatal(err)
	}
	c, err := ethereum.NewClient(&ethereum.EthereumClientConfig{
		BaseUrl: MockRpcUrl,
		ChainId: chainId,
		Network: network,
		Retry: &ethereum.RetryConfig{
			MaxRetries:        3,
			Delay:             time.Millisecond,
			BackoffMultiplier: 2,
		},
	}, GetTestLogger(), ethereum.WithHttpClient(mock.HttpClient(MockRpcUrl)))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// GetInMemorySqlite opens a private in-memory sqlite database for a single test.
func GetInMemorySqlite(t *testing.T) *gorm.DB {
	t.Helper()
	grm, err := sqlite.NewGormSqliteFromSqlite(sqlite.NewSqlite("file::memory:"), GetTestLogger())
	if err != nil {
		t.Fatal(err)
	}
	return grm
}
