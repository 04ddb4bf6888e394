package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taya-finance/backend/pkg/httputil"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PUT("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URICategoryID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	var uri URICategoryID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, bindError(err))
		return
	}

	_, err := co.ledger().Category(c.Request.Context(), uri.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List categories
// @Description	Returns all categories, ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			name	query		string	false	"Glob pattern for the name, compared case-insensitively"
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		writeError(c, bindError(err))
		return
	}

	categories, err := co.ledger().Categories(c.Request.Context(), filter.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	// When there are no categories, we want an empty list, not null
	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URICategoryID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	var uri URICategoryID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, bindError(err))
		return
	}

	category, err := co.ledger().Category(c.Request.Context(), uri.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: newCategory(c, category)})
}

// @Summary		Create category
// @Description	Creates a new category. The name must not be in use by another category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		writeError(c, bindError(err))
		return
	}

	category, err := co.ledger().CreateCategory(c.Request.Context(), editable.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: newCategory(c, category)})
}

// @Summary		Update category
// @Description	Renames a category
// @Tags			Categories
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URICategoryID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [put]
func (co Controller) UpdateCategory(c *gin.Context) {
	var uri URICategoryID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, bindError(err))
		return
	}

	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		writeError(c, bindError(err))
		return
	}

	_, err := co.ledger().UpdateCategory(c.Request.Context(), uri.ID, editable.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Delete category
// @Description	Deletes a category. Categories that movements are filed under cannot be deleted
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URICategoryID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	var uri URICategoryID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, bindError(err))
		return
	}

	err := co.ledger().DeleteCategory(c.Request.Context(), uri.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
