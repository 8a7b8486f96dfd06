package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velostore/commerce-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service ports.CatalogService
	cache   *listingCache
}

func NewCategoryHandler(service ports.CatalogService, cache ports.CatalogCache) *CategoryHandler {
	return &CategoryHandler{service: service, cache: newListingCache(cache)}
}

// List handles GET /api/v1/public/categories.
//
// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Param        pageNumber  query     int     false  "Page number (0-based)"
// @Param        pageSize    query     int     false  "Page size"
// @Param        sortBy      query     string  false  "Sort field"
// @Param        sortOrder   query     string  false  "asc or desc"
// @Success      200  {object}  pageEnvelope
// @Router       /api/v1/public/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	if body, ok := h.cache.lookup(c); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	page := pageFromQuery(c)
	result, err := h.service.ListCategories(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return h.cache.respond(c, envelope(result.Content, page, result.TotalElements))
}

// Create handles POST /api/v1/public/categories.
//
// @Summary      Create a category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      categoryRequest  true  "Category"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/public/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// Update handles PUT /api/v1/admin/categories/:categoryId.
//
// @Summary      Update a category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        categoryId  path      string           true  "Category id"
// @Param        body        body      categoryRequest  true  "Category"
// @Success      200         {object}  map[string]any
// @Failure      404         {object}  map[string]any
// @Router       /api/v1/admin/categories/{categoryId} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.UpdateCategory(c.Request().Context(), c.Param("categoryId"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /api/v1/admin/categories/:categoryId.
//
// @Summary      Delete a category
// @Tags         catalog
// @Produce      json
// @Param        categoryId  path      string  true  "Category id"
// @Success      200         {object}  map[string]any
// @Failure      404         {object}  map[string]any
// @Router       /api/v1/admin/categories/{categoryId} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	category, err := h.service.DeleteCategory(c.Request().Context(), c.Param("categoryId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}
