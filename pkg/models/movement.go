package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// MovementDescriptionMaxLength is the maximum number of characters in a description.
	MovementDescriptionMaxLength = 500

	// AmountPlaces is the number of fractional digits amounts are stored with.
	AmountPlaces = 2
)

// AmountLimit bounds the absolute value of amounts. sqlite stores DECIMAL columns
// as 64 bit floats, which hold 15 significant digits exactly.
var AmountLimit = decimal.New(1, 15-AmountPlaces)

// Movement is a single financial transaction. Positive amounts are income,
// negative amounts are expenses.
type Movement struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Timestamps
	OperationDate time.Time       `gorm:"not null;index"`
	ValueDate     time.Time       `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(18,2);not null"`
	Description   string          `gorm:"size:500;not null"`
	CategoryID    uint            `gorm:"not null;index"`
	Category      Category        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Movement) Self() string {
	return "Movement"
}

// AfterFind enforces UTC for all dates.
func (m *Movement) AfterFind(tx *gorm.DB) (err error) {
	err = m.Timestamps.AfterFind(tx)
	if err != nil {
		return err
	}

	m.OperationDate = m.OperationDate.In(time.UTC)
	m.ValueDate = m.ValueDate.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for all dates to UTC
//   - rounds the amount to the stored precision
//   - trims whitespace from the description and validates it
func (m *Movement) BeforeSave(_ *gorm.DB) error {
	if m.OperationDate.IsZero() {
		return fmt.Errorf("%w: the operation date must be set", ErrValidation)
	}

	if m.ValueDate.IsZero() {
		return fmt.Errorf("%w: the value date must be set", ErrValidation)
	}

	m.OperationDate = m.OperationDate.In(time.UTC)
	m.ValueDate = m.ValueDate.In(time.UTC)
	m.Amount = m.Amount.Round(AmountPlaces)
	if m.Amount.Abs().GreaterThanOrEqual(AmountLimit) {
		return fmt.Errorf("%w: the absolute value of the amount must be less than %s", ErrValidation, AmountLimit)
	}

	m.Description = strings.TrimSpace(m.Description)
	if m.Description == "" {
		return fmt.Errorf("%w: the description must not be empty", ErrValidation)
	}

	if utf8.RuneCountInString(m.Description) > MovementDescriptionMaxLength {
		return fmt.Errorf("%w: the description must not be longer than %d characters", ErrValidation, MovementDescriptionMaxLength)
	}

	return nil
}
