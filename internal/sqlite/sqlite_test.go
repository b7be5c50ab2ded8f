package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/Layr-Labs/eigenops/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Sqlite(t *testing.T) {
	l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})

	t.Run("Should open an in-memory database on a single connection", func(t *testing.T) {
		grm, err := NewGormSqliteFromSqlite(NewSqlite("file::memory:"), l)
		require.NoError(t, err)

		db, err := grm.DB()
		require.NoError(t, err)
		defer db.Close()
		assert.Equal(t, 1, db.Stats().MaxOpenConnections)
	})
	t.Run("Should apply pragmas to a file database", func(t *testing.T) {
		grm, err := NewGormSqliteFromSqlite(NewSqlite(filepath.Join(t.TempDir(), "eigenops.db")), l)
		require.NoError(t, err)
		db, _ := grm.DB()
		defer db.Close()

		var mode string
		require.NoError(t, grm.Raw(`PRAGMA journal_mode`).Scan(&mode).Error)
		assert.Equal(t, "wal", mode)

		var fk int
		require.NoError(t, grm.Raw(`PRAGMA foreign_keys`).Scan(&fk).Error)
		assert.Equal(t, 1, fk)
	})
}
