package ledger

import (
	"math"

	"github.com/taya-finance/backend/pkg/models"
	"gorm.io/gorm"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Page selects a slice of an ordered result set. Pages are 1-based.
type Page struct {
	Number int
	Size   int
}

// validate checks the page. A maxSize of 0 does not limit the page size.
func (p Page) validate(maxSize int) error {
	if p.Number < 1 {
		return Errorf(ValidationFailed, "page must be 1 or greater, got %d", p.Number)
	}

	if p.Size < 1 {
		return Errorf(ValidationFailed, "pageSize must be 1 or greater, got %d", p.Size)
	}

	if maxSize > 0 && p.Size > maxSize {
		return Errorf(ValidationFailed, "pageSize must not be greater than %d, got %d", maxSize, p.Size)
	}

	return nil
}

// unreachable reports whether the page starts beyond any offset the
// store can address. Such a page is always empty.
func (p Page) unreachable() bool {
	return p.Number-1 > math.MaxInt/p.Size
}

func (p Page) offset() int {
	return (p.Number - 1) * p.Size
}

// Scope returns the page as gorm scope.
func (p Page) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.offset()).Limit(p.Size)
	}
}

// totalPages returns the number of pages needed for count items.
func (p Page) totalPages(count int64) int64 {
	size := int64(p.Size)

	pages := count / size
	if count%size != 0 {
		pages++
	}

	return pages
}

// newestFirst orders movements by operation date, newest first. Ties are broken by
// creation time and ID so that pages are stable.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("movements.operation_date DESC, movements.created_at DESC, movements.id DESC")
}

// MovementPage is one page of a filtered movement list.
type MovementPage struct {
	TotalCount int64 // Number of movements matching the filter, across all pages
	Page       int
	PageSize   int
	TotalPages int64
	Items      []models.Movement
}
