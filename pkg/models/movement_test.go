package models_test

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taya-finance/backend/pkg/models"
)

func (suite *TestSuiteStandard) testMovement(categoryID uint) models.Movement {
	return models.Movement{
		ID:            uuid.New(),
		OperationDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		ValueDate:     time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromFloat(-42.5),
		Description:   "Weekly shopping",
		CategoryID:    categoryID,
	}
}

func (suite *TestSuiteStandard) TestMovementSaveNormalizes() {
	category := suite.createTestCategory("Groceries")
	tz, _ := time.LoadLocation("Europe/Berlin")

	movement := suite.testMovement(category.ID)
	movement.OperationDate = time.Date(2024, 1, 15, 1, 0, 0, 0, tz)
	movement.Amount = decimal.RequireFromString("12.345")
	movement.Description = "  Coffee  "

	require.Nil(suite.T(), suite.db.Create(&movement).Error)

	var found models.Movement
	require.Nil(suite.T(), suite.db.First(&found, "id = ?", movement.ID).Error)

	assert.Equal(suite.T(), time.UTC, found.OperationDate.Location())
	assert.Equal(suite.T(), time.UTC, found.ValueDate.Location())
	assert.Equal(suite.T(), time.UTC, found.CreatedAt.Location())
	assert.True(suite.T(), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).Equal(found.OperationDate), "got %s", found.OperationDate)
	assert.True(suite.T(), decimal.RequireFromString("12.35").Equal(found.Amount), "got %s", found.Amount)
	assert.Equal(suite.T(), "Coffee", found.Description)
}

func (suite *TestSuiteStandard) TestMovementValidation() {
	category := suite.createTestCategory("Groceries")

	tests := []struct {
		name   string
		modify func(*models.Movement)
	}{
		{"No operation date", func(m *models.Movement) { m.OperationDate = time.Time{} }},
		{"No value date", func(m *models.Movement) { m.ValueDate = time.Time{} }},
		{"Empty description", func(m *models.Movement) { m.Description = " " }},
		{"Amount at limit", func(m *models.Movement) { m.Amount = models.AmountLimit }},
		{"Negative amount at limit", func(m *models.Movement) { m.Amount = models.AmountLimit.Neg() }},
		{"Amount rounds to limit", func(m *models.Movement) { m.Amount = decimal.RequireFromString("9999999999999.995") }},
		{"Description too long", func(m *models.Movement) {
			m.Description = strings.Repeat("x", models.MovementDescriptionMaxLength+1)
		}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			movement := suite.testMovement(category.ID)
			tt.modify(&movement)

			err := suite.db.Create(&movement).Error
			assert.ErrorIs(suite.T(), err, models.ErrValidation)
		})
	}
}

func (suite *TestSuiteStandard) TestMovementAmountRoundTrip() {
	category := suite.createTestCategory("Groceries")

	amounts := []string{"9999999999999.99", "-9999999999999.99", "123456789012.67", "0.01", "-0.07"}
	for _, amount := range amounts {
		suite.Run(amount, func() {
			movement := suite.testMovement(category.ID)
			movement.Amount = decimal.RequireFromString(amount)
			require.Nil(suite.T(), suite.db.Create(&movement).Error)

			var found models.Movement
			require.Nil(suite.T(), suite.db.First(&found, "id = ?", movement.ID).Error)
			assert.Equal(suite.T(), amount, found.Amount.StringFixed(models.AmountPlaces))
		})
	}
}

func (suite *TestSuiteStandard) TestMovementUnknownCategory() {
	movement := suite.testMovement(4711)

	err := suite.db.Create(&movement).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryDoesNotExist)
}

func (suite *TestSuiteStandard) TestCategoryDeleteRestricted() {
	category := suite.createTestCategory("Groceries")
	movement := suite.testMovement(category.ID)
	require.Nil(suite.T(), suite.db.Create(&movement).Error)

	err := suite.db.Delete(&category).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryInUse)
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	err := suite.db.First(&models.Category{}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
