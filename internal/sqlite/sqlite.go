package sqlite

import (
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewSqlite(path string) gorm.Dialector {
	db := sqlite.Open(path)
	return db
}

// NewGormSqliteFromSqlite opens the dialector and applies connection pragmas.
func NewGormSqliteFromSqlite(sqlite gorm.Dialector, l *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		l.Sugar().Errorw("Failed to open sqlite database", zap.Error(err))
		return nil, err
	}
	// an in-memory database exists per connection
	sqlDb, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDb.SetMaxOpenConns(1)

	pragmas := []string{
		`PRAGMA foreign_keys = ON;`,
		`PRAGMA journal_mode = WAL;`,
		`PRAGMA busy_timeout = 5000;`,
	}

	for _, pragma := range pragmas {
		res := db.Exec(pragma)
		if res.Error != nil {
			l.Sugar().Errorw("Failed to apply pragma", zap.String("pragma", pragma), zap.Error(res.Error))
			return nil, res.Error
		}
	}
	return db, nil
}
