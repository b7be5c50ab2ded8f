package cmd

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/Layr-Labs/eigenops/pkg/clients/ethereum"
	"github.com/spf13/cobra"
)

var validateConnectionCmd = &cobra.Command{
	Use:   "validate-connection",
	Short: "Check that the configured RPC endpoint answers and serves the configured network",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		client, err := a.provider()
		if err != nil {
			return fatal(a.logger, "Failed to create provider", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		status := ethereum.ValidateConnection(ctx, client)
		if err := writeJSON(os.Stdout, status); err != nil {
			return err
		}
		if !status.Valid {
			return errors.New("connection is not valid")
		}
		return nil
	},
}
