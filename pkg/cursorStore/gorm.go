package cursorStore

import (
	"context"
	"errors"
	"time"

	"github.com/Layr-Labs/eigenops/pkg/postgres/helpers"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCursorStore keeps cursors in the event_cursors table of a sqlite or postgres database.
type GormCursorStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormCursorStore(db *gorm.DB, l *zap.Logger) *GormCursorStore {
	return &GormCursorStore{db: db, logger: l}
}

func (s *GormCursorStore) GetCursor(ctx context.Context, key string) (uint64, bool, error) {
	var cursor EventCursor
	res := s.db.WithContext(ctx).Where("key = ?", key).First(&cursor)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		s.logger.Sugar().Errorw("GetCursor - failed to load cursor", zap.String("key", key), zap.Error(res.Error))
		return 0, false, res.Error
	}
	return cursor.LastProcessedBlock, true, nil
}

func (s *GormCursorStore) SetCursor(ctx context.Context, cursor *EventCursor) error {
	_, err := helpers.WrapTxAndCommit(func(tx *gorm.DB) (*EventCursor, error) {
		now := time.Now()
		row := &EventCursor{
			Key:                cursor.Key,
			Network:            cursor.Network,
			Event:              cursor.Event,
			LastProcessedBlock: cursor.LastProcessedBlock,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_processed_block", "updated_at"}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "event_cursors.last_processed_block <= excluded.last_processed_block"},
			}},
		}).Create(row)
		return row, res.Error
	}, s.db.WithContext(ctx), nil)
	if err != nil {
		s.logger.Sugar().Errorw("SetCursor - failed to store cursor", zap.String("key", cursor.Key), zap.Error(err))
	}
	return err
}

func (s *GormCursorStore) ListCursors(ctx context.Context) ([]*EventCursor, error) {
	cursors := make([]*EventCursor, 0)
	res := s.db.WithContext(ctx).Order("key asc").Find(&cursors)
	if res.Error != nil {
		return nil, res.Error
	}
	return cursors, nil
}
