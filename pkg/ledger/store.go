package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/taya-finance/backend/pkg/models"
)

// Store is the persistence the ledger operates on.
//
// Find methods return an error wrapping models.ErrResourceNotFound when
// the resource does not exist.
type Store interface {
	FindCategory(ctx context.Context, id uint) (models.Category, error)
	CategoryExists(ctx context.Context, id uint) (bool, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	InsertCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) error

	FindMovement(ctx context.Context, id uuid.UUID) (models.Movement, error)
	CountMovements(ctx context.Context, filter Filter) (int64, error)
	ListMovements(ctx context.Context, filter Filter, page Page) ([]models.Movement, error)
	SumMovements(ctx context.Context, filter Filter) (Summary, error)
	MovementsByCategoryName(ctx context.Context, name string) ([]models.Movement, error)
	InsertMovement(ctx context.Context, movement *models.Movement) error
	UpdateMovement(ctx context.Context, movement *models.Movement) error
	DeleteMovement(ctx context.Context, id uuid.UUID) error
	MovementExistsForCategory(ctx context.Context, categoryID uint) (bool, error)

	// Atomic runs fn with a Store whose operations either all apply or none do.
	Atomic(ctx context.Context, fn func(Store) error) error
}
