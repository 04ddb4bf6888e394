package ledger

import (
	"context"
	"errors"

	"github.com/ryanuber/go-glob"
	"github.com/taya-finance/backend/pkg/models"
	"golang.org/x/exp/slices"
)

// Categories returns all categories ordered by name.
//
// If pattern is not empty, only categories whose names match the glob
// pattern are returned. The match is case-insensitive, "*" matches any
// sequence of characters.
func (l Ledger) Categories(ctx context.Context, pattern string) ([]models.Category, error) {
	categories, err := l.store.ListCategories(ctx)
	if err != nil {
		return nil, classify(err)
	}

	if pattern == "" {
		return categories, nil
	}

	pattern = models.FoldName(pattern)
	return slices.DeleteFunc(categories, func(c models.Category) bool {
		return !glob.Glob(pattern, c.NameKey)
	}), nil
}

// Category returns the category with the ID.
func (l Ledger) Category(ctx context.Context, id uint) (models.Category, error) {
	category, err := l.store.FindCategory(ctx, id)
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Category{}, categoryNotFound(id)
	}

	return category, classify(err)
}

// CreateCategory creates a category. The name must be unique.
func (l Ledger) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	category := models.Category{Name: name}

	err := l.store.InsertCategory(ctx, &category)
	if err != nil {
		return models.Category{}, classify(err)
	}

	return category, nil
}

// UpdateCategory renames a category.
func (l Ledger) UpdateCategory(ctx context.Context, id uint, name string) (models.Category, error) {
	var category models.Category

	err := l.store.Atomic(ctx, func(s Store) (err error) {
		category, err = s.FindCategory(ctx, id)
		if errors.Is(err, models.ErrResourceNotFound) {
			return categoryNotFound(id)
		} else if err != nil {
			return err
		}

		category.Name = name
		return s.UpdateCategory(ctx, &category)
	})
	if err != nil {
		return models.Category{}, classify(err)
	}

	return category, nil
}

// DeleteCategory deletes a category. Categories that
// movements are filed under cannot be deleted.
func (l Ledger) DeleteCategory(ctx context.Context, id uint) error {
	err := l.store.Atomic(ctx, func(s Store) error {
		exists, err := s.CategoryExists(ctx, id)
		if err != nil {
			return err
		}

		if !exists {
			return categoryNotFound(id)
		}

		inUse, err := s.MovementExistsForCategory(ctx, id)
		if err != nil {
			return err
		}

		if inUse {
			return Wrap(Conflict, models.ErrCategoryInUse)
		}

		return s.DeleteCategory(ctx, id)
	})

	return classify(err)
}

func categoryNotFound(id uint) *Error {
	return Errorf(NotFound, "category with ID %d not found", id)
}
