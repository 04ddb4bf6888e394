// Package v1 binds the ledger operations to the v1 HTTP API.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/taya-finance/backend/pkg/ledger"
	"gorm.io/gorm"
)

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	DB          *gorm.DB
	MaxPageSize int // Upper bound for the pageSize parameter, 0 for no bound
}

// ledger returns the ledger for a request.
func (co Controller) ledger() ledger.Ledger {
	return ledger.New(ledger.NewGormStore(co.DB), ledger.WithMaxPageSize(co.MaxPageSize))
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)

	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterMovementRoutes(r.Group("/movements"))
}
