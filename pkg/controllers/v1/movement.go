package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taya-finance/backend/pkg/httputil"
)

// RegisterMovementRoutes registers the routes for movements with
// the RouterGroup that is passed.
func (co Controller) RegisterMovementRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsMovementList)
		r.GET("", co.GetMovements)
		r.POST("", co.CreateMovement)
	}

	// Aggregations and lookups
	{
		r.OPTIONS("/summary", co.OptionsMovementSummary)
		r.GET("/summary", co.GetMovementSummary)
		r.OPTIONS("/category/:name", co.OptionsMovementsByCategoryName)
		r.GET("/category/:name", co.GetMovementsByCategoryName)
	}

	// Movement with ID
	{
		r.OPTIONS("/:id", co.OptionsMovementDetail)
		r.GET("/:id", co.GetMovement)
		r.PUT("/:id", co.UpdateMovement)
		r.DELETE("/:id", co.DeleteMovement)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Movements
// @Success		204
// @Router			/v1/movements [options]
func (co Controller) OptionsMovementList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Movements
// @Success		204
// @Router			/v1/movements/summary [options]
func (co Controller) OptionsMovementSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Movements
// @Success		204
// @Param			name	path	string	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/movements/category/{name} [options]
func (co Controller) OptionsMovementsByCategoryName(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Movements
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/movements/{id} [options]
func (co Controller) OptionsMovementDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, bindError(err))
		return
	}

	_, err := co.ledger().Movement(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		writeError(c, err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List movements
// @Description	Returns one page of the movements matching the filter, ordered by operation date, newest first
// @Tags			Movements
// @Produce		json
// @Success		200			{object}	MovementPageResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			startDate	query		string	false	"Operation date at or after. RFC3339 or YYYY-MM-DD"
// @Param			endDate		query		string	false	"Operation date at or before. RFC3339 or YYYY-MM-DD"
// @Param			categoryId	query		uint	false	"Filter by category ID"
// @Param			page		query		int		false	"Page number, starting at 1. Defaults to 1"
// @Param			pageSize	query		int		false	"Movements per page. Defaults to 10"
// @Router			/v1/movements [get]
func (co Controller) GetMovements(c *gin.Context) {
	var query MovementListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, bindError(err))
		return
	}

	page, err := co.ledger().Movements(c.Request.Context(), query.filter(), query.page())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MovementPageResponse{
		Data: MovementPage{
			TotalCount: page.TotalCount,
			Page:       page.Page,
			PageSize:   page.PageSize,
			TotalPages: page.TotalPages,
			Items:      newMovements(c, page.Items),
		},
	})
}

// @Summary		Summarize movements
// @Description	Returns the number of movements matching the filter and their total income and expenses
// @Tags			Movements
// @Produce		json
// @Success		200			{object}	SummaryResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			startDate	query		string	false	"Operation date at or after. RFC3339 or YYYY-MM-DD"
// @Param			endDate		query		string	false	"Operation date at or before. RFC3339 or YYYY-MM-DD"
// @Param			categoryId	query		uint	false	"Filter by category ID"
// @Router			/v1/movements/summary [get]
func (co Controller) GetMovementSummary(c *gin.Context) {
	var filter MovementQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		writeError(c, bindError(err))
		return
	}

	summary, err := co.ledger().Summary(c.Request.Context(), filter.filter())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Data: Summary{
			TotalMovements: summary.TotalMovements,
			TotalIncome:    summary.TotalIncome,
			TotalExpenses:  summary.TotalExpenses,
		},
	})
}

// @Summary		Movements by category name
// @Description	Returns all movements filed under the category with the name, compared case-insensitively
// @Tags			Movements
// @Produce		json
// @Success		200		{object}	MovementListResponse
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			name	path		string	true	"Category name"
// @Router			/v1/movements/category/{name} [get]
func (co Controller) GetMovementsByCategoryName(c *gin.Context) {
	var uri URICategoryName
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, bindError(err))
		return
	}

	movements, err := co.ledger().MovementsByCategoryName(c.Request.Context(), uri.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MovementListResponse{Data: newMovements(c, movements)})
}

// @Summary		Get movement
// @Description	Returns a specific movement
// @Tags			Movements
// @Produce		json
// @Success		200	{object}	MovementResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/movements/{id} [get]
func (co Controller) GetMovement(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, bindError(err))
		return
	}

	movement, err := co.ledger().Movement(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MovementResponse{Data: newMovement(c, movement)})
}

// @Summary		Create movement
// @Description	Creates a new movement. The amount must not be zero and the category must exist
// @Tags			Movements
// @Produce		json
// @Success		201			{object}	MovementResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			movement	body		MovementEditable	true	"Movement"
// @Router			/v1/movements [post]
func (co Controller) CreateMovement(c *gin.Context) {
	var editable MovementEditable
	if err := httputil.BindData(c, &editable); err != nil {
		writeError(c, bindError(err))
		return
	}

	movement, err := co.ledger().CreateMovement(c.Request.Context(), editable.input())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MovementResponse{Data: newMovement(c, movement)})
}

// @Summary		Update movement
// @Description	Replaces all fields of a movement
// @Tags			Movements
// @Produce		json
// @Success		200			{object}	MovementResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			movement	body		MovementEditable	true	"Movement"
// @Router			/v1/movements/{id} [put]
func (co Controller) UpdateMovement(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, bindError(err))
		return
	}

	var editable MovementEditable
	if err := httputil.BindData(c, &editable); err != nil {
		writeError(c, bindError(err))
		return
	}

	movement, err := co.ledger().UpdateMovement(c.Request.Context(), uri.ID.UUID, editable.input())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MovementResponse{Data: newMovement(c, movement)})
}

// @Summary		Delete movement
// @Description	Deletes a movement
// @Tags			Movements
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/movements/{id} [delete]
func (co Controller) DeleteMovement(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, bindError(err))
		return
	}

	err := co.ledger().DeleteMovement(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
