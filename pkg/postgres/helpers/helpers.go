package helpers

import "gorm.io/gorm"

// WrapTxAndCommit runs fn inside tx, or inside a new transaction on db when tx is nil.
// A transaction opened here is committed on success and rolled back on error.
func WrapTxAndCommit[T any](fn func(*gorm.DB) (T, error), db *gorm.DB, tx *gorm.DB) (T, error) {
	exists := tx != nil

	if !exists {
		tx = db.Begin()
		if tx.Error != nil {
			var zero T
			return zero, tx.Error
		}
	}

	res, err := fn(tx)
	if exists {
		return res, err
	}

	if err != nil {
		tx.Rollback()
		return res, err
	}
	if cerr := tx.Commit().Error; cerr != nil {
		return res, cerr
	}
	return res, nil
}
