package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Layr-Labs/eigenops/internal/config"
	"github.com/Layr-Labs/eigenops/internal/shutdown"
	"github.com/Layr-Labs/eigenops/pkg/cursorStore"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/eventPoller"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Poll EigenLayer contract events on an interval, emitting each match once",
	RunE: func(cmd *cobra.Command, args []string) error {
		bindSubcommandFlags(cmd)
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.cfg.ValidatePoller(); err != nil {
			return fatal(a.logger, "Invalid poller config", err)
		}
		sink, err := newRecordSink(os.Stdout, a.cfg.Poller.OutputFormat)
		if err != nil {
			return fatal(a.logger, "Invalid poller config", err)
		}

		store, closeStore, err := cursorStore.NewCursorStoreFromConfig(a.cfg, a.logger)
		if err != nil {
			return fatal(a.logger, "Failed to open cursor store", err)
		}
		defer closeStore()

		client, err := a.provider()
		if err != nil {
			return fatal(a.logger, "Failed to create provider", err)
		}
		poller := eventPoller.NewEventPoller(client, store, a.metricsSink, a.logger)

		subs := make([]*eventPoller.Subscription, 0, len(a.cfg.Poller.Events))
		for _, ev := range a.cfg.Poller.Events {
			if _, err := eventPoller.GetEventSpec(ev); err != nil {
				return fatal(a.logger, "Invalid poller config", err)
			}
			subs = append(subs, &eventPoller.Subscription{
				Network:       a.cfg.Network,
				Event:         ev,
				FilterAddress: a.cfg.Poller.FilterAddress,
			})
		}

		ctx, cancel := shutdown.ContextWithShutdown(context.Background(), a.logger)
		defer cancel()

		tick := func() {
			for _, sub := range subs {
				out, err := poller.Poll(ctx, sub)
				if err != nil {
					a.logger.Sugar().Errorw("Poll failed, retrying next tick",
						zap.String("event", sub.Event),
						zap.Error(err),
					)
					continue
				}
				if err := sink.Write(out); err != nil {
					a.logger.Sugar().Errorw("Failed to write records", zap.Error(err))
				}
			}
		}

		tick()
		if once, _ := cmd.Flags().GetBool("once"); once {
			return nil
		}

		c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
		if _, err := c.AddFunc(fmt.Sprintf("@every %s", a.cfg.Poller.Interval), tick); err != nil {
			return fatal(a.logger, "Failed to schedule poller", err)
		}
		c.Start()
		a.logger.Sugar().Infow("Poller started",
			zap.Strings("events", a.cfg.Poller.Events),
			zap.Duration("interval", a.cfg.Poller.Interval),
		)

		<-ctx.Done()
		stopped := c.Stop()
		select {
		case <-stopped.Done():
		case <-time.After(30 * time.Second):
			a.logger.Sugar().Warn("Timed out waiting for the running poll to finish")
		}
		return nil
	},
}

func init() {
	pollCmd.Flags().StringSlice(config.PollerEvents, nil, "Events to poll, e.g. Deposit,StakerDelegated")
	pollCmd.Flags().String(config.PollerFilterAddress, "", "Only emit events with this address in any address argument")
	pollCmd.Flags().Duration(config.PollerInterval, 12*time.Second, "Time between polls")
	pollCmd.Flags().String(config.PollerCursorStore, string(config.CursorStore_Memory), "Where cursors are kept (memory, sqlite, postgres)")
	pollCmd.Flags().String(config.PollerSqlitePath, "eigenops.db", "Path of the sqlite cursor database")
	pollCmd.Flags().String(config.PollerOutputFormat, "json", "Record output format (json, csv)")
	pollCmd.Flags().Bool("once", false, "Run a single poll and exit")
}

// recordSink serializes poll output. Writes may come from the cron goroutine.
type recordSink struct {
	mu    sync.Mutex
	write func([]*records.Record) error
}

func (s *recordSink) Write(recs []*records.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(recs)
}

func newRecordSink(w io.Writer, format string) (*recordSink, error) {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		return &recordSink{write: func(recs []*records.Record) error {
			for _, r := range recs {
				if err := enc.Encode(r); err != nil {
					return err
				}
			}
			return nil
		}}, nil
	case "csv":
		return &recordSink{write: eventPoller.NewCSVStream(w).Write}, nil
	}
	return nil, errorTypes.NewConfigurationError(config.PollerOutputFormat, "unknown output format '%s'", format)
}
