package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/Layr-Labs/eigenops/pkg/clients/eigenlayerApi"
	"github.com/spf13/cobra"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Query the EigenLayer REST API",
}

// runApi builds the REST client from config and prints whatever fetch returns.
func runApi(fetch func(ctx context.Context, c *eigenlayerApi.Client) (json.RawMessage, error)) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := eigenlayerApi.DefaultClientConfig()
	cfg.ApiKey = a.cfg.EigenlayerApi.ApiKey
	if a.cfg.EigenlayerApi.Url != "" {
		cfg.BaseUrl = a.cfg.EigenlayerApi.Url
	}
	client, err := eigenlayerApi.NewClient(cfg, a.logger)
	if err != nil {
		return fatal(a.logger, "Invalid EigenLayer API config", err)
	}

	body, err := fetch(context.Background(), client)
	if err != nil {
		return fatal(a.logger, "EigenLayer API request failed", err)
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return err
	}
	return writeJSON(os.Stdout, v)
}

func addressCommand(use string, short string, get func(c *eigenlayerApi.Client) func(context.Context, string) (json.RawMessage, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <address>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApi(func(ctx context.Context, c *eigenlayerApi.Client) (json.RawMessage, error) {
				return get(c)(ctx, args[0])
			})
		},
	}
}

var apiOperatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "List operators",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")
		status, _ := cmd.Flags().GetString("status")
		return runApi(func(ctx context.Context, c *eigenlayerApi.Client) (json.RawMessage, error) {
			return c.ListOperators(ctx, &eigenlayerApi.ListOperatorsParams{
				Limit:  limit,
				Offset: offset,
				Status: status,
			})
		})
	},
}

func init() {
	apiOperatorsCmd.Flags().Int("limit", 100, "Page size")
	apiOperatorsCmd.Flags().Int("offset", 0, "Page offset")
	apiOperatorsCmd.Flags().String("status", "", "Filter by operator status")

	apiCmd.AddCommand(apiOperatorsCmd)
	apiCmd.AddCommand(addressCommand("operator", "Get one operator", func(c *eigenlayerApi.Client) func(context.Context, string) (json.RawMessage, error) {
		return c.GetOperator
	}))
	apiCmd.AddCommand(addressCommand("staker", "Get one staker", func(c *eigenlayerApi.Client) func(context.Context, string) (json.RawMessage, error) {
		return c.GetStaker
	}))
	apiCmd.AddCommand(addressCommand("avs", "Get one AVS", func(c *eigenlayerApi.Client) func(context.Context, string) (json.RawMessage, error) {
		return c.GetAvs
	}))
}
