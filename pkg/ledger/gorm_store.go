package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/taya-finance/backend/pkg/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store with gorm.
type GormStore struct {
	db *gorm.DB
}

var _ Store = GormStore{}

// NewGormStore returns a Store backed by db.
func NewGormStore(db *gorm.DB) GormStore {
	return GormStore{db: db}
}

// session returns a new session bound to the context.
func (s GormStore) session(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s GormStore) FindCategory(ctx context.Context, id uint) (models.Category, error) {
	var category models.Category
	err := s.session(ctx).First(&category, id).Error
	return category, err
}

func (s GormStore) CategoryExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := s.session(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s GormStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.session(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s GormStore) InsertCategory(ctx context.Context, category *models.Category) error {
	return s.session(ctx).Create(category).Error
}

func (s GormStore) UpdateCategory(ctx context.Context, category *models.Category) error {
	return s.session(ctx).Save(category).Error
}

func (s GormStore) DeleteCategory(ctx context.Context, id uint) error {
	return s.session(ctx).Delete(&models.Category{}, id).Error
}

func (s GormStore) FindMovement(ctx context.Context, id uuid.UUID) (models.Movement, error) {
	var movement models.Movement
	err := s.session(ctx).Preload("Category").Where("movements.id = ?", id).First(&movement).Error
	return movement, err
}

func (s GormStore) CountMovements(ctx context.Context, filter Filter) (int64, error) {
	var count int64
	err := s.session(ctx).Model(&models.Movement{}).Scopes(filter.Scope()).Count(&count).Error
	return count, err
}

func (s GormStore) ListMovements(ctx context.Context, filter Filter, page Page) ([]models.Movement, error) {
	movements := make([]models.Movement, 0)
	err := s.session(ctx).
		Preload("Category").
		Scopes(filter.Scope(), newestFirst, page.Scope()).
		Find(&movements).Error
	return movements, err
}

func (s GormStore) SumMovements(ctx context.Context, filter Filter) (Summary, error) {
	var row summaryRow
	err := s.session(ctx).
		Model(&models.Movement{}).
		Scopes(filter.Scope()).
		Select(summarySelect).
		Scan(&row).Error
	return row.summary(), err
}

func (s GormStore) MovementsByCategoryName(ctx context.Context, name string) ([]models.Movement, error) {
	movements := make([]models.Movement, 0)
	err := s.session(ctx).
		Preload("Category").
		Scopes(categoryNameScope(name), newestFirst).
		Find(&movements).Error
	return movements, err
}

// InsertMovement creates the movement. The category association is never
// written, only the CategoryID.
func (s GormStore) InsertMovement(ctx context.Context, movement *models.Movement) error {
	return s.session(ctx).Omit(clause.Associations).Create(movement).Error
}

func (s GormStore) UpdateMovement(ctx context.Context, movement *models.Movement) error {
	return s.session(ctx).Omit(clause.Associations).Save(movement).Error
}

func (s GormStore) DeleteMovement(ctx context.Context, id uuid.UUID) error {
	return s.session(ctx).Where("id = ?", id).Delete(&models.Movement{}).Error
}

func (s GormStore) MovementExistsForCategory(ctx context.Context, categoryID uint) (bool, error) {
	var count int64
	err := s.session(ctx).Model(&models.Movement{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count > 0, err
}

func (s GormStore) Atomic(ctx context.Context, fn func(Store) error) error {
	return s.session(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(GormStore{db: tx})
	})
}
