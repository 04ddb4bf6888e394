package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taya-finance/backend/pkg/httputil"
)

// apiVersion is reported by the version endpoint. It is injected
// by RegisterRoutes from the version the binary was built with.
var apiVersion = "0.0.0"

type Response struct {
	Data Object `json:"data"` // Version information
}

type Object struct {
	Version string `json:"version" example:"1.4.2"` // Build version of the running server
}

// RegisterRoutes serves the version endpoint on the group.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	apiVersion = version

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Server version
// @Description	Returns the build version of the server
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Data: Object{Version: apiVersion},
	})
}
