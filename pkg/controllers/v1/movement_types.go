package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taya-finance/backend/pkg/httputil"
	"github.com/taya-finance/backend/pkg/ledger"
	"github.com/taya-finance/backend/pkg/models"
)

type MovementEditable struct {
	OperationDate httputil.Date   `json:"operationDate" swaggertype:"string" example:"2024-01-15"` // Date the movement was made. RFC3339 or YYYY-MM-DD
	ValueDate     httputil.Date   `json:"valueDate" swaggertype:"string" example:"2024-01-16"`     // Date the movement was booked. RFC3339 or YYYY-MM-DD
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"-42.50"`            // Positive for income, negative for expenses. Rounded to two decimal places, the absolute value must be below 10000000000000
	Description   string          `json:"description" example:"Weekly shopping" maxLength:"500"`   // Description of the movement
	CategoryID    uint            `json:"categoryId" example:"3"`                                  // ID of the category the movement is filed under
}

func (editable MovementEditable) input() ledger.MovementInput {
	return ledger.MovementInput{
		OperationDate: editable.OperationDate.Time,
		ValueDate:     editable.ValueDate.Time,
		Amount:        editable.Amount,
		Description:   editable.Description,
		CategoryID:    editable.CategoryID,
	}
}

type MovementLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/movements/1d2c0bd6-8aea-4b3e-9f5c-1b9c2e7d0a11"` // The movement itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3"`                               // The category of the movement
}

// Movement is the API v1 representation of a Movement.
type Movement struct {
	ID            uuid.UUID       `json:"id" example:"1d2c0bd6-8aea-4b3e-9f5c-1b9c2e7d0a11"`
	CreatedAt     time.Time       `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt     time.Time       `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
	OperationDate time.Time       `json:"operationDate" example:"2024-01-15T00:00:00Z"`
	ValueDate     time.Time       `json:"valueDate" example:"2024-01-16T00:00:00Z"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"-42.5"`
	Description   string          `json:"description" example:"Weekly shopping"`
	CategoryID    uint            `json:"categoryId" example:"3"`
	Category      Category        `json:"category"` // The category the movement is filed under
	Links         MovementLinks   `json:"links"`
}

func newMovement(c *gin.Context, model models.Movement) Movement {
	url := c.GetString(string(models.DBContextURL))

	return Movement{
		ID:            model.ID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
		OperationDate: model.OperationDate,
		ValueDate:     model.ValueDate,
		Amount:        model.Amount,
		Description:   model.Description,
		CategoryID:    model.CategoryID,
		Category:      newCategory(c, model.Category),
		Links: MovementLinks{
			Self:     fmt.Sprintf("%s/v1/movements/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%d", url, model.CategoryID),
		},
	}
}

func newMovements(c *gin.Context, movements []models.Movement) []Movement {
	data := make([]Movement, 0, len(movements))
	for _, m := range movements {
		data = append(data, newMovement(c, m))
	}

	return data
}

type MovementResponse struct {
	Data Movement `json:"data"` // Data for the movement
}

type MovementListResponse struct {
	Data []Movement `json:"data"` // List of movements
}

type MovementPage struct {
	TotalCount int64      `json:"totalCount" example:"42"` // Number of movements matching the filter, across all pages
	Page       int        `json:"page" example:"1"`
	PageSize   int        `json:"pageSize" example:"10"`
	TotalPages int64      `json:"totalPages" example:"5"`
	Items      []Movement `json:"items"` // Movements on this page, newest first
}

type MovementPageResponse struct {
	Data MovementPage `json:"data"`
}

type Summary struct {
	TotalMovements int64           `json:"totalMovements" example:"42"`
	TotalIncome    decimal.Decimal `json:"totalIncome" swaggertype:"string" example:"2500"`      // Sum of all positive amounts
	TotalExpenses  decimal.Decimal `json:"totalExpenses" swaggertype:"string" example:"1873.45"` // Absolute value of the sum of all negative amounts
}

type SummaryResponse struct {
	Data Summary `json:"data"`
}

// MovementQueryFilter is the filter for movement lists and summaries.
type MovementQueryFilter struct {
	StartDate  *httputil.Date `form:"startDate"`  // Operation date at or after. RFC3339 or YYYY-MM-DD
	EndDate    *httputil.Date `form:"endDate"`    // Operation date at or before. RFC3339 or YYYY-MM-DD
	CategoryID *uint          `form:"categoryId"` // ID of the category
}

func (f MovementQueryFilter) filter() ledger.Filter {
	return ledger.Filter{
		StartDate:  f.StartDate.Ptr(),
		EndDate:    f.EndDate.Ptr(),
		CategoryID: f.CategoryID,
	}
}

// MovementListQuery adds pagination to the MovementQueryFilter.
type MovementListQuery struct {
	MovementQueryFilter
	Page     int `form:"page,default=1"`      // Page number, starting at 1
	PageSize int `form:"pageSize,default=10"` // Number of movements per page
}

func (q MovementListQuery) page() ledger.Page {
	return ledger.Page{
		Number: q.Page,
		Size:   q.PageSize,
	}
}
