package config

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func Test_Config(t *testing.T) {
	t.Run("KebabToSnakeCase", func(t *testing.T) {
		assert.Equal(t, "rpc.api_key", KebabToSnakeCase(RpcApiKey))
		assert.Equal(t, "gas.buffer_percent", KebabToSnakeCase("gas.buffer-percent"))
	})
	t.Run("Should read values set in viper", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()

		viper.Set(KebabToSnakeCase(Network), "testnet")
		viper.Set(KebabToSnakeCase(RpcProvider), "alchemy")
		viper.Set(KebabToSnakeCase(RpcApiKey), "key")
		viper.Set(KebabToSnakeCase(GasBufferPercent), 30)
		viper.Set(KebabToSnakeCase(GasConfirmationTimeout), "2m")
		viper.Set(KebabToSnakeCase(PollerEvents), []string{"Deposit", "StakerDelegated"})
		viper.Set(KebabToSnakeCase(PollerInterval), "15s")

		cfg := NewConfig()
		assert.Equal(t, "testnet", cfg.Network)
		assert.Equal(t, "alchemy", cfg.Rpc.Provider)
		assert.Equal(t, "key", cfg.Rpc.ApiKey)
		assert.Equal(t, 30, cfg.Gas.BufferPercent)
		assert.Equal(t, 2*time.Minute, cfg.Gas.ConfirmationTimeout)
		assert.Equal(t, []string{"Deposit", "StakerDelegated"}, cfg.Poller.Events)
		assert.Equal(t, CursorStore_Memory, cfg.Poller.CursorStore)

		n, err := cfg.ParsedNetwork()
		assert.Nil(t, err)
		assert.Equal(t, registry.Network_Holesky, n)

		assert.Nil(t, cfg.ValidatePoller())
	})
	t.Run("Should read values from the environment", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()
		viper.SetEnvPrefix(ENV_PREFIX)
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
		viper.AutomaticEnv()

		os.Setenv("EIGENOPS_RPC_CUSTOM_URL", "http://localhost:8545")
		defer os.Unsetenv("EIGENOPS_RPC_CUSTOM_URL")

		cfg := NewConfig()
		assert.Equal(t, "http://localhost:8545", cfg.Rpc.CustomUrl)
		assert.Equal(t, "mainnet", cfg.Network)
	})
	t.Run("ValidatePoller rejects incomplete poller sections", func(t *testing.T) {
		cfg := &Config{Poller: PollerConfig{Interval: time.Second, CursorStore: CursorStore_Memory}}
		err := cfg.ValidatePoller()
		var ce *errorTypes.ConfigurationError
		assert.True(t, errors.As(err, &ce))
		assert.Equal(t, PollerEvents, ce.Field)

		cfg.Poller.Events = []string{"Deposit"}
		cfg.Poller.CursorStore = CursorStore_Sqlite
		assert.ErrorContains(t, cfg.ValidatePoller(), "sqlite path")

		cfg.Poller.CursorStore = "redis"
		assert.ErrorContains(t, cfg.ValidatePoller(), "unknown cursor store")
	})
}
