// Package migrations versions the cursor store schema on sqlite and postgres.
package migrations

import (
	"time"

	"github.com/Layr-Labs/eigenops/pkg/postgres/helpers"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Dialect string

const (
	Dialect_Sqlite   Dialect = "sqlite"
	Dialect_Postgres Dialect = "postgres"
)

// Migration is a named schema step with one statement list per dialect.
type Migration struct {
	Name       string
	Statements map[Dialect][]string
}

// Migrations is applied in order. Names are never reused.
var Migrations = []Migration{
	{
		Name: "202610170900_eventCursors",
		Statements: map[Dialect][]string{
			Dialect_Sqlite: {
				`CREATE TABLE IF NOT EXISTS event_cursors (
					key TEXT NOT NULL PRIMARY KEY,
					network TEXT NOT NULL,
					event TEXT NOT NULL,
					last_processed_block INTEGER NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_event_cursors_network_event ON event_cursors(network, event)`,
			},
			Dialect_Postgres: {
				`CREATE TABLE IF NOT EXISTS event_cursors (
					key varchar NOT NULL PRIMARY KEY,
					network varchar NOT NULL,
					event varchar NOT NULL,
					last_processed_block bigint NOT NULL,
					created_at timestamp with time zone DEFAULT current_timestamp,
					updated_at timestamp with time zone DEFAULT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_event_cursors_network_event ON event_cursors(network, event)`,
			},
		},
	},
}

type AppliedMigration struct {
	Name      string `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (AppliedMigration) TableName() string {
	return "migrations"
}

type Migrator struct {
	db         *gorm.DB
	dialect    Dialect
	migrations []Migration
	logger     *zap.Logger
}

// NewMigrator picks the statement set from the gorm dialector in use.
func NewMigrator(db *gorm.DB, l *zap.Logger) *Migrator {
	return &Migrator{
		db:         db,
		dialect:    Dialect(db.Dialector.Name()),
		migrations: Migrations,
		logger:     l,
	}
}

// MigrateAll applies every pending migration, each in its own transaction with its bookkeeping row.
func (m *Migrator) MigrateAll() error {
	if err := m.db.AutoMigrate(&AppliedMigration{}); err != nil {
		return errors.Wrap(err, "failed to create migrations table")
	}
	applied, err := m.Applied()
	if err != nil {
		return err
	}
	done := make(map[string]bool, len(applied))
	for _, name := range applied {
		done[name] = true
	}

	for _, migration := range m.migrations {
		if done[migration.Name] {
			continue
		}
		if err := m.apply(migration); err != nil {
			m.logger.Sugar().Errorw("Migration failed", zap.String("name", migration.Name), zap.Error(err))
			return err
		}
		m.logger.Sugar().Infow("Applied migration", zap.String("name", migration.Name), zap.String("dialect", string(m.dialect)))
	}
	return nil
}

func (m *Migrator) apply(migration Migration) error {
	statements, ok := migration.Statements[m.dialect]
	if !ok {
		return errors.Errorf("migration %s has no statements for dialect %s", migration.Name, m.dialect)
	}
	_, err := helpers.WrapTxAndCommit(func(tx *gorm.DB) (any, error) {
		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return nil, errors.Wrapf(err, "migration %s", migration.Name)
			}
		}
		return nil, tx.Create(&AppliedMigration{Name: migration.Name}).Error
	}, m.db, nil)
	return err
}

// Applied lists recorded migration names in the order they were applied.
func (m *Migrator) Applied() ([]string, error) {
	var names []string
	if err := m.db.Model(&AppliedMigration{}).Order("created_at asc, name asc").Pluck("name", &names).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list applied migrations")
	}
	return names, nil
}
