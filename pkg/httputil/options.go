package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// allow sets the allow header to the methods and OPTIONS.
func allow(c *gin.Context, methods ...string) {
	c.Header("allow", strings.Join(append([]string{http.MethodOptions}, methods...), ", "))
	c.Render(http.StatusNoContent, render.JSON{})
}

func OptionsGet(c *gin.Context) {
	allow(c, http.MethodGet)
}

func OptionsGetPost(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPost)
}

func OptionsGetPutDelete(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPut, http.MethodDelete)
}
