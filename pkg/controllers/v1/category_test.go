package v1_test

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/taya-finance/backend/pkg/controllers/v1"
	"github.com/taya-finance/backend/pkg/models"
	"github.com/taya-finance/backend/test"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	category := suite.createTestCategory(suite.T(), " Groceries ")

	assert.NotZero(suite.T(), category.Data.ID)
	assert.Equal(suite.T(), "Groceries", category.Data.Name)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/categories/%d", category.Data.ID), category.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/movements?categoryId=%d", category.Data.ID), category.Data.Links.Movements)
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	suite.createTestCategory(suite.T(), "Groceries")

	tests := []struct {
		name   string
		body   any
		status int
		kind   string
	}{
		{"Duplicate name", v1.CategoryEditable{Name: "Groceries"}, http.StatusBadRequest, "Conflict"},
		{"Duplicate name, other case", v1.CategoryEditable{Name: "gROCERIES"}, http.StatusBadRequest, "Conflict"},
		{"Empty name", v1.CategoryEditable{Name: ""}, http.StatusBadRequest, "ValidationFailed"},
		{"Name too long", v1.CategoryEditable{Name: strings.Repeat("a", models.CategoryNameMaxLength+1)}, http.StatusBadRequest, "ValidationFailed"},
		{"Empty body", "", http.StatusBadRequest, "ValidationFailed"},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, "ValidationFailed"},
		{"Not JSON", "name=Rent", http.StatusBadRequest, "ValidationFailed"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), suite.db, http.MethodPost, "http://example.com/v1/categories", tt.body)
			assertError(suite.T(), &r, tt.status, tt.kind)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreateDuplicateMessage() {
	suite.createTestCategory(suite.T(), "Groceries")

	r := test.Request(suite.T(), suite.db, http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "groceries"})
	e := assertError(suite.T(), &r, http.StatusBadRequest, "Conflict")
	assert.Equal(suite.T(), models.ErrCategoryNameNotUnique.Error(), e.Error)
}

func (suite *TestSuiteStandard) TestCategoriesGetList() {
	suite.createTestCategory(suite.T(), "Salary")
	suite.createTestCategory(suite.T(), "Groceries")
	suite.createTestCategory(suite.T(), "Gas")

	tests := []struct {
		query string
		names []string
	}{
		{"", []string{"Gas", "Groceries", "Salary"}},
		{"?name=g*", []string{"Gas", "Groceries"}},
		{"?name=SALARY", []string{"Salary"}},
		{"?name=rent", []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			r := test.Request(suite.T(), suite.db, http.MethodGet, "http://example.com/v1/categories"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var list v1.CategoryListResponse
			test.DecodeResponse(suite.T(), &r, &list)

			names := make([]string, 0)
			for _, c := range list.Data {
				names = append(names, c.Name)
			}
			assert.Equal(suite.T(), tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetListEmpty() {
	r := test.Request(suite.T(), suite.db, http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{"data":[]}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	category := suite.createTestCategory(suite.T(), "Groceries")

	r := test.Request(suite.T(), suite.db, http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var got v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &got)
	assert.Equal(suite.T(), category.Data.ID, got.Data.ID)
	assert.Equal(suite.T(), "Groceries", got.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoriesGetFails() {
	tests := []struct {
		name   string
		id     string
		status int
		kind   string
	}{
		{"Not found", "999", http.StatusNotFound, "NotFound"},
		{"Not a number", "groceries", http.StatusBadRequest, "ValidationFailed"},
		{"Negative", "-1", http.StatusBadRequest, "ValidationFailed"},
		{"Zero", "0", http.StatusBadRequest, "ValidationFailed"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			for _, method := range []string{http.MethodGet, http.MethodOptions, http.MethodPut, http.MethodDelete} {
				r := test.Request(suite.T(), suite.db, method, "http://example.com/v1/categories/"+tt.id, v1.CategoryEditable{Name: "Rent"})
				assertError(suite.T(), &r, tt.status, tt.kind)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetNotFoundMessage() {
	r := test.Request(suite.T(), suite.db, http.MethodGet, "http://example.com/v1/categories/999", "")
	e := assertError(suite.T(), &r, http.StatusNotFound, "NotFound")
	assert.Equal(suite.T(), "category with ID 999 not found", e.Error)
}

func (suite *TestSuiteStandard) TestCategoriesOptionsDetail() {
	category := suite.createTestCategory(suite.T(), "Groceries")

	r := test.Request(suite.T(), suite.db, http.MethodOptions, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := suite.createTestCategory(suite.T(), "Groceries")

	r := test.Request(suite.T(), suite.db, http.MethodPut, category.Data.Links.Self, v1.CategoryEditable{Name: "Food"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Empty(suite.T(), r.Body.String())

	r = test.Request(suite.T(), suite.db, http.MethodGet, category.Data.Links.Self, "")
	var updated v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Food", updated.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoriesUpdateFails() {
	suite.createTestCategory(suite.T(), "Rent")
	category := suite.createTestCategory(suite.T(), "Groceries")

	tests := []struct {
		name   string
		body   any
		status int
		kind   string
	}{
		{"Name of other category", v1.CategoryEditable{Name: "RENT"}, http.StatusBadRequest, "Conflict"},
		{"Empty name", v1.CategoryEditable{Name: "  "}, http.StatusBadRequest, "ValidationFailed"},
		{"Empty body", "", http.StatusBadRequest, "ValidationFailed"},
		{"Broken body", `{ "name": true }`, http.StatusBadRequest, "ValidationFailed"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), suite.db, http.MethodPut, category.Data.Links.Self, tt.body)
			assertError(suite.T(), &r, tt.status, tt.kind)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	category := suite.createTestCategory(suite.T(), "Groceries")

	r := test.Request(suite.T(), suite.db, http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.db, http.MethodGet, category.Data.Links.Self, "")
	assertError(suite.T(), &r, http.StatusNotFound, "NotFound")
}

func (suite *TestSuiteStandard) TestCategoriesDeleteInUse() {
	category := suite.createTestCategory(suite.T(), "Groceries")
	suite.createTestMovement(suite.T(), movementBody(category.Data.ID, "2024-01-15", "-10", "Bread"))

	r := test.Request(suite.T(), suite.db, http.MethodDelete, category.Data.Links.Self, "")
	e := assertError(suite.T(), &r, http.StatusBadRequest, "Conflict")
	assert.Equal(suite.T(), models.ErrCategoryInUse.Error(), e.Error)

	r = test.Request(suite.T(), suite.db, http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCategoriesDatabaseClosed() {
	suite.CloseDB()

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "http://example.com/v1/categories", ""},
		{http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Groceries"}},
		{http.MethodGet, "http://example.com/v1/categories/1", ""},
		{http.MethodPut, "http://example.com/v1/categories/1", v1.CategoryEditable{Name: "Groceries"}},
		{http.MethodDelete, "http://example.com/v1/categories/1", ""},
	}

	for _, tt := range tests {
		suite.Run(tt.method+" "+tt.path, func() {
			r := test.Request(suite.T(), suite.db, tt.method, tt.path, tt.body)
			e := assertError(suite.T(), &r, http.StatusInternalServerError, "Internal")
			require.Equal(suite.T(), models.ErrGeneral.Error(), e.Error)
		})
	}
}
