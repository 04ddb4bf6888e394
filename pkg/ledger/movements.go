package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taya-finance/backend/pkg/models"
)

// MovementInput contains all fields of a movement that can be written.
type MovementInput struct {
	OperationDate time.Time
	ValueDate     time.Time
	Amount        decimal.Decimal
	Description   string
	CategoryID    uint
}

func (in MovementInput) apply(m *models.Movement) {
	m.OperationDate = in.OperationDate
	m.ValueDate = in.ValueDate
	m.Amount = in.Amount
	m.Description = in.Description
	m.CategoryID = in.CategoryID
}

// Movements returns one page of the movements matching the filter, newest first.
//
// A filter that matches nothing is not an error, the page is empty.
func (l Ledger) Movements(ctx context.Context, filter Filter, page Page) (MovementPage, error) {
	err := page.validate(l.maxPageSize)
	if err != nil {
		return MovementPage{}, err
	}

	count, err := l.store.CountMovements(ctx, filter)
	if err != nil {
		return MovementPage{}, classify(err)
	}

	movements := make([]models.Movement, 0)
	if !page.unreachable() {
		movements, err = l.store.ListMovements(ctx, filter, page)
		if err != nil {
			return MovementPage{}, classify(err)
		}
	}

	return MovementPage{
		TotalCount: count,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: page.totalPages(count),
		Items:      movements,
	}, nil
}

// Summary aggregates all movements matching the filter.
func (l Ledger) Summary(ctx context.Context, filter Filter) (Summary, error) {
	summary, err := l.store.SumMovements(ctx, filter)
	if err != nil {
		return Summary{}, classify(err)
	}

	return summary, nil
}

// MovementsByCategoryName returns all movements filed under the category with the name,
// compared case-insensitively.
//
// Unlike Movements, finding no movements is reported as NotFound.
func (l Ledger) MovementsByCategoryName(ctx context.Context, name string) ([]models.Movement, error) {
	movements, err := l.store.MovementsByCategoryName(ctx, name)
	if err != nil {
		return nil, classify(err)
	}

	if len(movements) == 0 {
		return nil, Errorf(NotFound, "no movements found for category: %s", name)
	}

	return movements, nil
}

// Movement returns the movement with the ID.
func (l Ledger) Movement(ctx context.Context, id uuid.UUID) (models.Movement, error) {
	movement, err := l.store.FindMovement(ctx, id)
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Movement{}, movementNotFound(id)
	}

	return movement, classify(err)
}

// CreateMovement creates a movement with a new ID. The amount must not be zero
// and the category must exist.
//
// The returned movement has its category set.
func (l Ledger) CreateMovement(ctx context.Context, in MovementInput) (models.Movement, error) {
	if in.Amount.Round(models.AmountPlaces).IsZero() {
		return models.Movement{}, Errorf(ValidationFailed, "amount cannot be zero")
	}

	var movement models.Movement
	err := l.store.Atomic(ctx, func(s Store) error {
		err := requireCategory(ctx, s, in.CategoryID)
		if err != nil {
			return err
		}

		movement = models.Movement{ID: uuid.New()}
		in.apply(&movement)

		err = s.InsertMovement(ctx, &movement)
		if err != nil {
			return err
		}

		movement, err = s.FindMovement(ctx, movement.ID)
		return err
	})
	if err != nil {
		return models.Movement{}, classify(err)
	}

	return movement, nil
}

// UpdateMovement replaces all fields of a movement.
//
// The category is only verified when it changes. The amount is not
// verified, so a movement can be updated to an amount of zero.
func (l Ledger) UpdateMovement(ctx context.Context, id uuid.UUID, in MovementInput) (models.Movement, error) {
	var movement models.Movement
	err := l.store.Atomic(ctx, func(s Store) (err error) {
		movement, err = s.FindMovement(ctx, id)
		if errors.Is(err, models.ErrResourceNotFound) {
			return movementNotFound(id)
		} else if err != nil {
			return err
		}

		if in.CategoryID != movement.CategoryID {
			err = requireCategory(ctx, s, in.CategoryID)
			if err != nil {
				return err
			}
		}

		in.apply(&movement)
		movement.Category = models.Category{}

		err = s.UpdateMovement(ctx, &movement)
		if err != nil {
			return err
		}

		movement, err = s.FindMovement(ctx, id)
		return err
	})
	if err != nil {
		return models.Movement{}, classify(err)
	}

	return movement, nil
}

// DeleteMovement deletes a movement.
func (l Ledger) DeleteMovement(ctx context.Context, id uuid.UUID) error {
	err := l.store.Atomic(ctx, func(s Store) error {
		_, err := s.FindMovement(ctx, id)
		if errors.Is(err, models.ErrResourceNotFound) {
			return movementNotFound(id)
		} else if err != nil {
			return err
		}

		return s.DeleteMovement(ctx, id)
	})

	return classify(err)
}

// requireCategory verifies that the category exists.
func requireCategory(ctx context.Context, s Store, id uint) error {
	exists, err := s.CategoryExists(ctx, id)
	if err != nil {
		return err
	}

	if !exists {
		return Errorf(ValidationFailed, "category with ID %d does not exist", id)
	}

	return nil
}

func movementNotFound(id uuid.UUID) *Error {
	return Errorf(NotFound, "movement with ID %s not found", id)
}
