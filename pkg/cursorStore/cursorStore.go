// Package cursorStore persists the last processed block per polled event stream.
package cursorStore

import (
	"context"
	"fmt"
	"time"

	"github.com/Layr-Labs/eigenops/internal/config"
	"github.com/Layr-Labs/eigenops/internal/sqlite"
	"github.com/Layr-Labs/eigenops/pkg/cursorStore/migrations"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/postgres"
	"go.uber.org/zap"
)

type EventCursor struct {
	Key                string `gorm:"primaryKey;column:key"`
	Network            string
	Event              string
	LastProcessedBlock uint64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (EventCursor) TableName() string {
	return "event_cursors"
}

// CursorKey is <network>:<event>, suffixed with :<filter> when a filter address is set.
func CursorKey(network string, event string, filter string) string {
	if filter == "" {
		return fmt.Sprintf("%s:%s", network, event)
	}
	return fmt.Sprintf("%s:%s:%s", network, event, filter)
}

type CursorStore interface {
	// GetCursor returns the last processed block and whether one was recorded.
	GetCursor(ctx context.Context, key string) (uint64, bool, error)
	// SetCursor records cursor. A block lower than the stored one is ignored.
	SetCursor(ctx context.Context, cursor *EventCursor) error
	ListCursors(ctx context.Context) ([]*EventCursor, error)
}

// NewCursorStoreFromConfig builds the configured store. The returned func releases its resources.
func NewCursorStoreFromConfig(cfg *config.Config, l *zap.Logger) (CursorStore, func(), error) {
	switch cfg.Poller.CursorStore {
	case config.CursorStore_Memory, "":
		return NewMemoryCursorStore(), func() {}, nil
	case config.CursorStore_Sqlite:
		grm, err := sqlite.NewGormSqliteFromSqlite(sqlite.NewSqlite(cfg.Poller.SqlitePath), l)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.NewMigrator(grm, l).MigrateAll(); err != nil {
			return nil, nil, err
		}
		closer := func() {
			if db, err := grm.DB(); err == nil {
				_ = db.Close()
			}
		}
		return NewGormCursorStore(grm, l), closer, nil
	case config.CursorStore_Postgres:
		pgConfig := postgres.PostgresConfigFromDbConfig(&cfg.DatabaseConfig)
		pgConfig.CreateDbIfNotExists = true
		pg, err := postgres.NewPostgres(pgConfig, l)
		if err != nil {
			return nil, nil, err
		}
		grm, err := postgres.NewGormFromPostgresConnection(pg.Db)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.NewMigrator(grm, l).MigrateAll(); err != nil {
			return nil, nil, err
		}
		return NewGormCursorStore(grm, l), func() { _ = pg.Db.Close() }, nil
	}
	return nil, nil, errorTypes.NewConfigurationError(config.PollerCursorStore, "unknown cursor store '%s'", cfg.Poller.CursorStore)
}
