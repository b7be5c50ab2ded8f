package cmd

import (
	"context"
	"os"

	"github.com/Layr-Labs/eigenops/internal/config"
	"github.com/Layr-Labs/eigenops/internal/shutdown"
	"github.com/Layr-Labs/eigenops/pkg/cursorStore"
	"github.com/Layr-Labs/eigenops/pkg/eventPoller"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var backfillCmd = &cobra.Command{
	Use:   "backfill <event>",
	Short: "Replay one event over a block range without moving any cursor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bindSubcommandFlags(cmd)
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		from, _ := cmd.Flags().GetUint64("from-block")
		to, _ := cmd.Flags().GetUint64("to-block")
		window, _ := cmd.Flags().GetUint64("window")
		quiet, _ := cmd.Flags().GetBool("quiet")

		client, err := a.provider()
		if err != nil {
			return fatal(a.logger, "Failed to create provider", err)
		}
		ctx, cancel := shutdown.ContextWithShutdown(context.Background(), a.logger)
		defer cancel()

		if to == 0 {
			head, err := client.BlockNumber(ctx)
			if err != nil {
				return fatal(a.logger, "Failed to fetch head block", err)
			}
			to = head
		}

		// backfills never read or write cursors
		poller := eventPoller.NewEventPoller(client, cursorStore.NewMemoryCursorStore(), a.metricsSink, a.logger)

		var progress eventPoller.BackfillProgress
		if !quiet && to >= from {
			bar := progressbar.NewOptions64(int64(to-from+1),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("backfilling "+args[0]),
				progressbar.OptionShowCount(),
				progressbar.OptionSetPredictTime(true),
				progressbar.OptionClearOnFinish(),
			)
			progress = func(done, total uint64) {
				_ = bar.Set64(int64(done))
			}
			defer bar.Finish() //nolint:errcheck
		}

		out, err := poller.Backfill(ctx, &eventPoller.Subscription{
			Network:       a.cfg.Network,
			Event:         args[0],
			FilterAddress: a.cfg.Poller.FilterAddress,
		}, from, to, window, progress)
		if err != nil {
			// whatever was collected before the failure is still written
			a.logger.Sugar().Errorw("Backfill stopped early", zap.Int("records", len(out)), zap.Error(err))
		}

		sink, serr := newRecordSink(os.Stdout, a.cfg.Poller.OutputFormat)
		if serr != nil {
			return fatal(a.logger, "Invalid output format", serr)
		}
		if werr := sink.Write(out); werr != nil {
			return werr
		}
		return err
	},
}

func init() {
	backfillCmd.Flags().Uint64("from-block", 0, "First block of the range")
	backfillCmd.Flags().Uint64("to-block", 0, "Last block of the range, 0 means the current head")
	backfillCmd.Flags().Uint64("window", eventPoller.DefaultBackfillWindow, "Blocks per eth_getLogs request")
	backfillCmd.Flags().String(config.PollerFilterAddress, "", "Only emit events with this address in any address argument")
	backfillCmd.Flags().String(config.PollerOutputFormat, "json", "Record output format (json, csv)")
	backfillCmd.Flags().Bool("quiet", false, "Hide the progress bar")
}
