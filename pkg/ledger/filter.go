package ledger

import (
	"time"

	"github.com/taya-finance/backend/pkg/models"
	"gorm.io/gorm"
)

// Filter selects movements. Nil fields do not constrain the selection.
//
// The same Filter is used for listing and for summaries, so a summary
// always aggregates exactly the movements that can be paged through.
type Filter struct {
	StartDate  *time.Time // Operation date at or after
	EndDate    *time.Time // Operation date at or before
	CategoryID *uint
}

// Scope returns the filter as gorm scope on the movements table.
func (f Filter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.StartDate != nil {
			db = db.Where("movements.operation_date >= ?", f.StartDate.In(time.UTC))
		}

		if f.EndDate != nil {
			db = db.Where("movements.operation_date <= ?", f.EndDate.In(time.UTC))
		}

		if f.CategoryID != nil {
			db = db.Where("movements.category_id = ?", *f.CategoryID)
		}

		return db
	}
}

// categoryNameScope selects movements whose category has the name,
// compared case-insensitively.
func categoryNameScope(name string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN categories ON categories.id = movements.category_id").
			Where("categories.name_key = ?", models.FoldName(name))
	}
}
