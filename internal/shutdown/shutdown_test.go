package shutdown

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/Layr-Labs/eigenops/internal/logger"
	"github.com/stretchr/testify/assert"
)

func Test_Watch(t *testing.T) {
	l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})

	t.Run("First signal cancels and second exits", func(t *testing.T) {
		codes := make(chan int, 1)
		exit = func(code int) { codes <- code }
		defer func() { exit = os.Exit }()

		sigs := make(chan os.Signal, 2)
		ctx, cancel := watch(context.Background(), sigs, func() {}, l)
		defer cancel()

		sigs <- syscall.SIGINT
		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("context was not cancelled")
		}

		sigs <- syscall.SIGTERM
		select {
		case code := <-codes:
			assert.Equal(t, 130, code)
		case <-time.After(time.Second):
			t.Fatal("second signal did not exit")
		}
	})
	t.Run("Cancelling the parent stops watching", func(t *testing.T) {
		stopped := make(chan struct{})
		parent, cancelParent := context.WithCancel(context.Background())
		ctx, cancel := watch(parent, make(chan os.Signal), func() { close(stopped) }, l)
		defer cancel()

		cancelParent()
		<-ctx.Done()
		select {
		case <-stopped:
		case <-time.After(time.Second):
			t.Fatal("signal watcher did not stop")
		}
	})
}
