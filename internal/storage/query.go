package storage

import (
	"math"

	"gorm.io/gorm"
)

// Exists reports whether model has a row matching query, selecting only its id.
func Exists(db *gorm.DB, model interface{}, query interface{}, args ...interface{}) (bool, error) {
	var ids []int64
	if err := db.Model(model).Where(query, args...).Limit(1).Pluck("id", &ids).Error; err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// Page applies skip/limit in primary-key order. A negative skip is ignored and
// a negative limit means no upper bound. MySQL has no OFFSET without LIMIT, so
// an unbounded page past the first row gets the largest LIMIT instead.
func Page(db *gorm.DB, skip, limit int) *gorm.DB {
	if limit < 0 && skip > 0 {
		limit = math.MaxInt
	}
	return db.Order("id").Offset(skip).Limit(limit)
}
