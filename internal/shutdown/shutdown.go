// Package shutdown turns SIGINT/SIGTERM into context cancellation for long-running commands.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

var signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// exit is swapped in tests.
var exit = os.Exit

// ContextWithShutdown returns a context cancelled on the first signal. A second signal exits
// immediately with status 130 so a stuck RPC call cannot hold the process.
func ContextWithShutdown(parent context.Context, l *zap.Logger) (context.Context, context.CancelFunc) {
	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, signals...)
	return watch(parent, sigs, func() { signal.Stop(sigs) }, l)
}

func watch(parent context.Context, sigs <-chan os.Signal, stop func(), l *zap.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		defer stop()
		select {
		case sig := <-sigs:
			l.Sugar().Infow("Caught signal, finishing current work", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
			return
		}
		sig := <-sigs
		l.Sugar().Warnw("Caught second signal, exiting now", zap.String("signal", sig.String()))
		exit(130)
	}()
	return ctx, cancel
}
