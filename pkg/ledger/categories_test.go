package ledger_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taya-finance/backend/pkg/ledger"
	"github.com/taya-finance/backend/pkg/models"
)

func (suite *TestSuiteStandard) TestCategoriesOrderedByName() {
	suite.createTestCategory("Rent")
	suite.createTestCategory("Groceries")
	suite.createTestCategory("Salary")

	categories, err := suite.ledger.Categories(suite.ctx, "")
	require.Nil(suite.T(), err)
	require.Len(suite.T(), categories, 3)

	assert.Equal(suite.T(), "Groceries", categories[0].Name)
	assert.Equal(suite.T(), "Rent", categories[1].Name)
	assert.Equal(suite.T(), "Salary", categories[2].Name)
}

func (suite *TestSuiteStandard) TestCategoriesEmpty() {
	categories, err := suite.ledger.Categories(suite.ctx, "")
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), categories, 0)
}

func (suite *TestSuiteStandard) TestCategoriesPattern() {
	suite.createTestCategory("Groceries")
	suite.createTestCategory("Gas")
	suite.createTestCategory("Salary")

	tests := []struct {
		pattern string
		want    []string
	}{
		{"g*", []string{"Gas", "Groceries"}},
		{"GAS", []string{"Gas"}},
		{"*a*", []string{"Gas", "Salary"}},
		{"rent", []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.pattern, func() {
			categories, err := suite.ledger.Categories(suite.ctx, tt.pattern)
			require.Nil(suite.T(), err)

			names := make([]string, 0)
			for _, c := range categories {
				names = append(names, c.Name)
			}
			assert.Equal(suite.T(), tt.want, names)
		})
	}
}

func (suite *TestSuiteStandard) TestCategory() {
	created := suite.createTestCategory("Groceries")

	category, err := suite.ledger.Category(suite.ctx, created.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Groceries", category.Name)
	assert.Equal(suite.T(), created.ID, category.ID)
}

func (suite *TestSuiteStandard) TestCategoryNotFound() {
	_, err := suite.ledger.Category(suite.ctx, 999)
	assert.Equal(suite.T(), ledger.NotFound, ledger.KindOf(err))
	assert.Equal(suite.T(), "category with ID 999 not found", err.Error())
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	category, err := suite.ledger.CreateCategory(suite.ctx, "  Groceries ")
	require.Nil(suite.T(), err)

	assert.NotZero(suite.T(), category.ID)
	assert.Equal(suite.T(), "Groceries", category.Name)
	assert.False(suite.T(), category.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestCreateCategoryFails() {
	suite.createTestCategory("Groceries")

	tests := []struct {
		name string
		kind ledger.Kind
		err  error
	}{
		{"", ledger.ValidationFailed, models.ErrValidation},
		{"groceries", ledger.Conflict, models.ErrCategoryNameNotUnique},
		{"GROCERIES ", ledger.Conflict, models.ErrCategoryNameNotUnique},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.ledger.CreateCategory(suite.ctx, tt.name)
			assert.Equal(suite.T(), tt.kind, ledger.KindOf(err))
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	created := suite.createTestCategory("Groceries")

	updated, err := suite.ledger.UpdateCategory(suite.ctx, created.ID, "Food")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Food", updated.Name)

	category, err := suite.ledger.Category(suite.ctx, created.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Food", category.Name)
}

func (suite *TestSuiteStandard) TestUpdateCategoryOwnNameCase() {
	created := suite.createTestCategory("groceries")

	updated, err := suite.ledger.UpdateCategory(suite.ctx, created.ID, "Groceries")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Groceries", updated.Name)
}

func (suite *TestSuiteStandard) TestUpdateCategoryFails() {
	suite.createTestCategory("Rent")
	category := suite.createTestCategory("Groceries")

	_, err := suite.ledger.UpdateCategory(suite.ctx, category.ID, "rent")
	assert.Equal(suite.T(), ledger.Conflict, ledger.KindOf(err))

	_, err = suite.ledger.UpdateCategory(suite.ctx, category.ID, " ")
	assert.Equal(suite.T(), ledger.ValidationFailed, ledger.KindOf(err))

	_, err = suite.ledger.UpdateCategory(suite.ctx, 999, "Food")
	assert.Equal(suite.T(), ledger.NotFound, ledger.KindOf(err))

	// Failed updates do not change the category
	unchanged, err := suite.ledger.Category(suite.ctx, category.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Groceries", unchanged.Name)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	category := suite.createTestCategory("Groceries")

	err := suite.ledger.DeleteCategory(suite.ctx, category.ID)
	require.Nil(suite.T(), err)

	_, err = suite.ledger.Category(suite.ctx, category.ID)
	assert.Equal(suite.T(), ledger.NotFound, ledger.KindOf(err))

	err = suite.ledger.DeleteCategory(suite.ctx, category.ID)
	assert.Equal(suite.T(), ledger.NotFound, ledger.KindOf(err))
}

func (suite *TestSuiteStandard) TestDeleteCategoryInUse() {
	category := suite.createTestCategory("Groceries")
	suite.createTestMovement(movementInput(category.ID, day(2024, 1, 15), "-20"))

	err := suite.ledger.DeleteCategory(suite.ctx, category.ID)
	assert.Equal(suite.T(), ledger.Conflict, ledger.KindOf(err))
	assert.ErrorIs(suite.T(), err, models.ErrCategoryInUse)

	_, err = suite.ledger.Category(suite.ctx, category.ID)
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCategoriesDatabaseClosed() {
	suite.CloseDB()

	_, err := suite.ledger.Categories(suite.ctx, "")
	assert.Equal(suite.T(), ledger.Internal, ledger.KindOf(err))
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	_, err = suite.ledger.CreateCategory(suite.ctx, "Groceries")
	assert.Equal(suite.T(), ledger.Internal, ledger.KindOf(err))
}
