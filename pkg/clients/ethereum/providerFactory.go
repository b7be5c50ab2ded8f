package ethereum

import (
	"fmt"
	"sync"

	"github.com/Layr-Labs/eigenops/pkg/registry"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DefaultProviderCacheSize = 16

type ProviderFactoryConfig struct {
	CacheSize int
	// Template supplies batching, rate limiting and retry settings for every client built.
	Template *EthereumClientConfig
	Options  []ClientOption
}

// ProviderFactory owns a bounded cache of clients keyed by connection URL and chain id,
// so one endpoint reused across networks never hands back a client pinned to another chain.
// Evicted clients are closed. It is created at process start and closed at shutdown.
type ProviderFactory struct {
	logger *zap.Logger
	config *ProviderFactoryConfig
	cache  *lru.Cache[string, *Client]
	mu     sync.Mutex
}

func NewProviderFactory(cfg *ProviderFactoryConfig, l *zap.Logger) (*ProviderFactory, error) {
	if cfg == nil {
		cfg = &ProviderFactoryConfig{}
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultProviderCacheSize
	}
	if cfg.Template == nil {
		cfg.Template = DefaultEthereumClientConfig()
	}
	cache, err := lru.NewWithEvict[string, *Client](cfg.CacheSize, func(_ string, client *Client) {
		l.Sugar().Debugw("Evicting cached provider", zap.String("network", client.Network()))
		client.Close()
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create provider cache")
	}
	return &ProviderFactory{
		logger: l,
		config: cfg,
		cache:  cache,
	}, nil
}

func providerKey(url string, chainId uint64) string {
	return fmt.Sprintf("%d|%s", chainId, url)
}

// GetProvider returns the cached client for the credential's URL and network, building one if absent.
func (pf *ProviderFactory) GetProvider(cred *ConnectionCredential) (*Client, error) {
	url, err := BuildConnectionUrl(cred)
	if err != nil {
		return nil, err
	}
	profile, err := registry.GetNetworkProfile(cred.Network)
	if err != nil {
		return nil, err
	}

	pf.mu.Lock()
	defer pf.mu.Unlock()

	key := providerKey(url, profile.ChainId)
	if client, ok := pf.cache.Get(key); ok {
		return client, nil
	}

	cfg := *pf.config.Template
	cfg.BaseUrl = url
	cfg.ChainId = profile.ChainId
	cfg.Network = string(profile.Network)

	client, err := NewClient(&cfg, pf.logger, pf.config.Options...)
	if err != nil {
		return nil, err
	}
	pf.cache.Add(key, client)
	return client, nil
}

func (pf *ProviderFactory) Len() int {
	return pf.cache.Len()
}

// Close evicts and closes every cached client.
func (pf *ProviderFactory) Close() {
	pf.mu.Lock()
	defer pf.mu.Unlock()
	pf.cache.Purge()
}
