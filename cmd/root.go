package cmd

import (
	"os"
	"strings"

	"github.com/Layr-Labs/eigenops/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "eigenops",
	Short:         "Read and write EigenLayer restaking contracts and poll their events",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	initConfig(rootCmd)

	rootCmd.PersistentFlags().Bool(config.Debug, false, `"true" or "false"`)
	rootCmd.PersistentFlags().StringP(config.Network, "n", "mainnet", "The network to use (mainnet, holesky)")

	rootCmd.PersistentFlags().String(config.RpcProvider, "custom", "RPC provider (alchemy, infura, quicknode, custom)")
	rootCmd.PersistentFlags().String(config.RpcApiKey, "", "RPC provider API key, or the full endpoint URL for quicknode")
	rootCmd.PersistentFlags().String(config.RpcCustomUrl, "", `e.g. "http://<hostname>:8545"`)
	rootCmd.PersistentFlags().Float64(config.RpcRequestsPerSecond, 0, "Client side rate limit for RPC requests, 0 disables it")
	rootCmd.PersistentFlags().Int(config.RpcCacheSize, 16, "Number of RPC clients kept in the provider cache")
	rootCmd.PersistentFlags().Int(config.RpcBatchSize, 10, "Number of requests placed in one JSON-RPC batch")

	rootCmd.PersistentFlags().String(config.SignerMethod, "", "Signing method (privateKey, mnemonic). Empty disables writes")
	rootCmd.PersistentFlags().String(config.SignerPrivateKey, "", "Hex private key, with or without 0x")
	rootCmd.PersistentFlags().String(config.SignerMnemonic, "", "BIP-39 mnemonic phrase")
	rootCmd.PersistentFlags().String(config.SignerDerivationPath, "m/44'/60'/0'/0/0", "HD derivation path used with a mnemonic")

	rootCmd.PersistentFlags().Int(config.GasBufferPercent, 20, "Percentage added on top of the gas estimate")
	rootCmd.PersistentFlags().Duration(config.GasConfirmationTimeout, 0, "How long to wait for a receipt, 0 uses the default")
	rootCmd.PersistentFlags().Int(config.GasConfirmations, 1, "Blocks to wait for after inclusion")

	rootCmd.PersistentFlags().Int(config.MulticallChunkSize, 50, "Calls per Multicall3 aggregate")
	rootCmd.PersistentFlags().Int(config.MulticallConcurrency, 5, "Multicall chunks in flight")
	rootCmd.PersistentFlags().Bool(config.MulticallSequential, false, "Read with eth_call one by one instead of Multicall3")

	rootCmd.PersistentFlags().String(config.DatabaseHost, "localhost", `PostgreSQL host`)
	rootCmd.PersistentFlags().Int(config.DatabasePort, 5432, `PostgreSQL port`)
	rootCmd.PersistentFlags().String(config.DatabaseUser, "eigenops", `PostgreSQL username`)
	rootCmd.PersistentFlags().String(config.DatabasePassword, "", `PostgreSQL password`)
	rootCmd.PersistentFlags().String(config.DatabaseDbName, "eigenops", `PostgreSQL database name`)
	rootCmd.PersistentFlags().String(config.DatabaseSchemaName, "", `PostgreSQL schema name (default "public")`)

	rootCmd.PersistentFlags().String(config.EigenlayerApiUrl, "", "EigenLayer API base URL")
	rootCmd.PersistentFlags().String(config.EigenlayerApiKey, "", "EigenLayer API key")

	rootCmd.PersistentFlags().Bool(config.DataDogStatsdEnabled, false, `e.g. "true" or "false"`)
	rootCmd.PersistentFlags().String(config.DataDogStatsdUrl, "", `e.g. "localhost:8125"`)
	rootCmd.PersistentFlags().Float64(config.DataDogStatsdSampleRate, 1.0, `The sample rate to use for statsd metrics`)

	rootCmd.PersistentFlags().Bool(config.PrometheusEnabled, false, `e.g. "true" or "false"`)
	rootCmd.PersistentFlags().Int(config.PrometheusPort, 2112, `The port to run the prometheus server on`)

	// setup sub commands
	rootCmd.AddCommand(invokeCmd)
	rootCmd.AddCommand(operationsCmd)
	rootCmd.AddCommand(pollCmd)
	rootCmd.AddCommand(backfillCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(validateConnectionCmd)
	rootCmd.AddCommand(runVersionCmd)

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		key := config.KebabToSnakeCase(f.Name)
		viper.BindPFlag(key, f) //nolint:errcheck
		viper.BindEnv(key)      //nolint:errcheck
	})
}

func initConfig(cmd *cobra.Command) {
	viper.SetEnvPrefix(config.ENV_PREFIX)

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.AutomaticEnv()
}

// bindSubcommandFlags binds a subcommand's local flags the same way the root binds its persistent ones.
func bindSubcommandFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := config.KebabToSnakeCase(f.Name)
		viper.BindPFlag(key, f) //nolint:errcheck
		viper.BindEnv(key)      //nolint:errcheck
	})
}
