// Package root serves the entrypoint of the API.
package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taya-finance/backend/pkg/httputil"
	"github.com/taya-finance/backend/pkg/models"
)

type Response struct {
	Links Links `json:"links"`
}

// Links point to every top level resource of the API.
type Links struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Interactive API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Database health check
	Version string `json:"version" example:"https://example.com/api/version"`      // Build version of the server
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // Categories and movements
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Links to the documentation, health, version, metrics and v1 endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	base := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:    base + "/docs/index.html",
			Healthz: base + "/healthz",
			Version: base + "/version",
			Metrics: base + "/metrics",
			V1:      base + "/v1",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
