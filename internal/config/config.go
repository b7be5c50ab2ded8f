package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/spf13/viper"
)

const ENV_PREFIX = "EIGENOPS"

type CursorStoreType string

const (
	CursorStore_Memory   CursorStoreType = "memory"
	CursorStore_Sqlite   CursorStoreType = "sqlite"
	CursorStore_Postgres CursorStoreType = "postgres"
)

// Flag/viper keys. Dots separate sections; KebabToSnakeCase maps them to env var names.
const (
	Debug   = "debug"
	Network = "network"

	RpcProvider          = "rpc.provider"
	RpcApiKey            = "rpc.api-key"
	RpcCustomUrl         = "rpc.custom-url"
	RpcRequestsPerSecond = "rpc.requests-per-second"
	RpcCacheSize         = "rpc.cache-size"
	RpcBatchSize         = "rpc.batch-size"

	SignerMethod         = "signer.method"
	SignerPrivateKey     = "signer.private-key"
	SignerMnemonic       = "signer.mnemonic"
	SignerDerivationPath = "signer.derivation-path"

	GasBufferPercent       = "gas.buffer-percent"
	GasConfirmationTimeout = "gas.confirmation-timeout"
	GasConfirmations       = "gas.confirmations"

	MulticallChunkSize   = "multicall.chunk-size"
	MulticallConcurrency = "multicall.concurrency"
	MulticallSequential  = "multicall.sequential"

	PollerEvents        = "poller.events"
	PollerFilterAddress = "poller.filter-address"
	PollerInterval      = "poller.interval"
	PollerCursorStore   = "poller.cursor-store"
	PollerSqlitePath    = "poller.sqlite-path"
	PollerOutputFormat  = "poller.output-format"

	DatabaseHost       = "database.host"
	DatabasePort       = "database.port"
	DatabaseUser       = "database.user"
	DatabasePassword   = "database.password"
	DatabaseDbName     = "database.db_name"
	DatabaseSchemaName = "database.schema_name"

	EigenlayerApiUrl = "eigenlayer-api.url"
	EigenlayerApiKey = "eigenlayer-api.key"

	DataDogStatsdEnabled    = "datadog.statsd.enabled"
	DataDogStatsdUrl        = "datadog.statsd.url"
	DataDogStatsdSampleRate = "datadog.statsd.sample_rate"

	PrometheusEnabled = "prometheus.enabled"
	PrometheusPort    = "prometheus.port"
)

type RpcConfig struct {
	Provider          string
	ApiKey            string
	CustomUrl         string
	RequestsPerSecond float64
	CacheSize         int
	BatchSize         int
}

type SignerConfig struct {
	Method         string
	PrivateKey     string
	Mnemonic       string
	DerivationPath string
}

type GasConfig struct {
	BufferPercent       int
	ConfirmationTimeout time.Duration
	Confirmations       int
}

type MulticallConfig struct {
	ChunkSize   int
	Concurrency int
	Sequential  bool
}

type PollerConfig struct {
	Events        []string
	FilterAddress string
	Interval      time.Duration
	CursorStore   CursorStoreType
	SqlitePath    string
	OutputFormat  string
}

type DatabaseConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	DbName     string
	SchemaName string
}

type EigenlayerApiConfig struct {
	Url    string
	ApiKey string
}

type DataDogConfig struct {
	StatsdConfig StatsdConfig
}

type StatsdConfig struct {
	Enabled    bool
	Url        string
	SampleRate float64
}

type PrometheusConfig struct {
	Enabled bool
	Port    int
}

type Config struct {
	Debug            bool
	Network          string
	Rpc              RpcConfig
	Signer           SignerConfig
	Gas              GasConfig
	Multicall        MulticallConfig
	Poller           PollerConfig
	DatabaseConfig   DatabaseConfig
	EigenlayerApi    EigenlayerApiConfig
	DataDogConfig    DataDogConfig
	PrometheusConfig PrometheusConfig
}

func StringWithDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func NewConfig() *Config {
	return &Config{
		Debug:   viper.GetBool(normalizeFlagName(Debug)),
		Network: StringWithDefault(viper.GetString(normalizeFlagName(Network)), string(registry.Network_Mainnet)),

		Rpc: RpcConfig{
			Provider:          viper.GetString(normalizeFlagName(RpcProvider)),
			ApiKey:            viper.GetString(normalizeFlagName(RpcApiKey)),
			CustomUrl:         viper.GetString(normalizeFlagName(RpcCustomUrl)),
			RequestsPerSecond: viper.GetFloat64(normalizeFlagName(RpcRequestsPerSecond)),
			CacheSize:         viper.GetInt(normalizeFlagName(RpcCacheSize)),
			BatchSize:         viper.GetInt(normalizeFlagName(RpcBatchSize)),
		},

		Signer: SignerConfig{
			Method:         viper.GetString(normalizeFlagName(SignerMethod)),
			PrivateKey:     viper.GetString(normalizeFlagName(SignerPrivateKey)),
			Mnemonic:       viper.GetString(normalizeFlagName(SignerMnemonic)),
			DerivationPath: viper.GetString(normalizeFlagName(SignerDerivationPath)),
		},

		Gas: GasConfig{
			BufferPercent:       viper.GetInt(normalizeFlagName(GasBufferPercent)),
			ConfirmationTimeout: viper.GetDuration(normalizeFlagName(GasConfirmationTimeout)),
			Confirmations:       viper.GetInt(normalizeFlagName(GasConfirmations)),
		},

		Multicall: MulticallConfig{
			ChunkSize:   viper.GetInt(normalizeFlagName(MulticallChunkSize)),
			Concurrency: viper.GetInt(normalizeFlagName(MulticallConcurrency)),
			Sequential:  viper.GetBool(normalizeFlagName(MulticallSequential)),
		},

		Poller: PollerConfig{
			Events:        viper.GetStringSlice(normalizeFlagName(PollerEvents)),
			FilterAddress: viper.GetString(normalizeFlagName(PollerFilterAddress)),
			Interval:      viper.GetDuration(normalizeFlagName(PollerInterval)),
			CursorStore:   CursorStoreType(StringWithDefault(viper.GetString(normalizeFlagName(PollerCursorStore)), string(CursorStore_Memory))),
			SqlitePath:    viper.GetString(normalizeFlagName(PollerSqlitePath)),
			OutputFormat:  StringWithDefault(viper.GetString(normalizeFlagName(PollerOutputFormat)), "json"),
		},

		DatabaseConfig: DatabaseConfig{
			Host:       viper.GetString(normalizeFlagName(DatabaseHost)),
			Port:       viper.GetInt(normalizeFlagName(DatabasePort)),
			User:       viper.GetString(normalizeFlagName(DatabaseUser)),
			Password:   viper.GetString(normalizeFlagName(DatabasePassword)),
			DbName:     viper.GetString(normalizeFlagName(DatabaseDbName)),
			SchemaName: viper.GetString(normalizeFlagName(DatabaseSchemaName)),
		},

		EigenlayerApi: EigenlayerApiConfig{
			Url:    viper.GetString(normalizeFlagName(EigenlayerApiUrl)),
			ApiKey: viper.GetString(normalizeFlagName(EigenlayerApiKey)),
		},

		DataDogConfig: DataDogConfig{
			StatsdConfig: StatsdConfig{
				Enabled:    viper.GetBool(normalizeFlagName(DataDogStatsdEnabled)),
				Url:        viper.GetString(normalizeFlagName(DataDogStatsdUrl)),
				SampleRate: viper.GetFloat64(normalizeFlagName(DataDogStatsdSampleRate)),
			},
		},

		PrometheusConfig: PrometheusConfig{
			Enabled: viper.GetBool(normalizeFlagName(PrometheusEnabled)),
			Port:    viper.GetInt(normalizeFlagName(PrometheusPort)),
		},
	}
}

// ValidatePoller checks the poller section before any client is built.
func (c *Config) ValidatePoller() error {
	if len(c.Poller.Events) == 0 {
		return errorTypes.NewConfigurationError(PollerEvents, "at least one event is required")
	}
	switch c.Poller.CursorStore {
	case CursorStore_Memory:
	case CursorStore_Sqlite:
		if c.Poller.SqlitePath == "" {
			return errorTypes.NewConfigurationError(PollerSqlitePath, "sqlite path is required for the sqlite cursor store")
		}
	case CursorStore_Postgres:
		if c.DatabaseConfig.Host == "" || c.DatabaseConfig.DbName == "" {
			return errorTypes.NewConfigurationError(DatabaseHost, "database host and name are required for the postgres cursor store")
		}
	default:
		return errorTypes.NewConfigurationError(PollerCursorStore, "unknown cursor store '%s'", c.Poller.CursorStore)
	}
	if c.Poller.Interval <= 0 {
		return errorTypes.NewConfigurationError(PollerInterval, "poll interval must be positive")
	}
	return nil
}

func (c *Config) ParsedNetwork() (registry.Network, error) {
	return registry.ParseNetwork(c.Network)
}

func (c *Config) GetPrometheusAddress() string {
	return fmt.Sprintf(":%d", c.PrometheusConfig.Port)
}

func KebabToSnakeCase(str string) string {
	return strings.ReplaceAll(str, "-", "_")
}

func normalizeFlagName(name string) string {
	return KebabToSnakeCase(name)
}
