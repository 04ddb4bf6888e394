package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taya-finance/backend/pkg/httputil"
	"github.com/taya-finance/backend/pkg/models"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"` // URL of the category list endpoint
	Movements  string `json:"movements" example:"https://example.com/api/v1/movements"`   // URL of the movement list endpoint
	Summary    string `json:"summary" example:"https://example.com/api/v1/movements/summary"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Categories: url + "/v1/categories",
			Movements:  url + "/v1/movements",
			Summary:    url + "/v1/movements/summary",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
