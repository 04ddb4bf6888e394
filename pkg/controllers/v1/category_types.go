package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taya-finance/backend/pkg/models"
)

type CategoryEditable struct {
	Name string `json:"name" example:"Groceries" maxLength:"100"` // Name of the category. Unique, compared case-insensitively
}

type CategoryLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/categories/3"`                // The category itself
	Movements string `json:"movements" example:"https://example.com/api/v1/movements?categoryId=3"` // Movements filed under the category
}

// Category is the API v1 representation of a Category.
type Category struct {
	ID        uint      `json:"id" example:"3"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
		},
		Links: CategoryLinks{
			Self:      fmt.Sprintf("%s/v1/categories/%d", url, model.ID),
			Movements: fmt.Sprintf("%s/v1/movements?categoryId=%d", url, model.ID),
		},
	}
}

type CategoryResponse struct {
	Data Category `json:"data"` // Data for the category
}

type CategoryListResponse struct {
	Data []Category `json:"data"` // List of categories
}

type CategoryQueryFilter struct {
	Name string `form:"name"` // Glob pattern for the name, e.g. "food*". Case-insensitive
}
