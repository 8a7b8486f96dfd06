package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velostore/commerce-api/internal/api/middleware"
	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.CatalogService
	cache   *listingCache
}

func NewProductHandler(service ports.CatalogService, cache ports.CatalogCache) *ProductHandler {
	return &ProductHandler{service: service, cache: newListingCache(cache)}
}

// Create handles POST /api/v1/admin/categories/:categoryId/product.
//
// @Summary      Add a product to a category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        categoryId  path      string          true  "Category id"
// @Param        body        body      productRequest  true  "Product"
// @Success      201         {object}  map[string]any
// @Failure      400         {object}  map[string]any
// @Failure      404         {object}  map[string]any
// @Router       /api/v1/admin/categories/{categoryId}/product [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	seller := ""
	if p, ok := middleware.Principal(c); ok {
		seller = p.Username
	}

	product, err := h.service.CreateProduct(c.Request().Context(), c.Param("categoryId"), seller, domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Discount:    req.Discount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// List handles GET /api/v1/public/products.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  pageEnvelope
// @Router       /api/v1/public/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	return h.list(c, ports.ProductFilter{})
}

// ByCategory handles GET /api/v1/public/categories/:categoryId/products.
//
// @Summary      List products of a category
// @Tags         catalog
// @Produce      json
// @Param        categoryId  path  string  true  "Category id"
// @Success      200  {object}  pageEnvelope
// @Failure      404  {object}  map[string]any
// @Router       /api/v1/public/categories/{categoryId}/products [get]
func (h *ProductHandler) ByCategory(c echo.Context) error {
	return h.list(c, ports.ProductFilter{CategoryID: c.Param("categoryId")})
}

// Search handles GET /api/v1/public/products/search/:keyword.
//
// @Summary      Search products by keyword
// @Tags         catalog
// @Produce      json
// @Param        keyword  path  string  true  "Keyword"
// @Success      200  {object}  pageEnvelope
// @Router       /api/v1/public/products/search/{keyword} [get]
func (h *ProductHandler) Search(c echo.Context) error {
	return h.list(c, ports.ProductFilter{Keyword: c.Param("keyword")})
}

// SellerList handles GET /api/v1/seller/products, scoped to the principal.
//
// @Summary      List own products
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  pageEnvelope
// @Failure      403  {object}  map[string]any
// @Router       /api/v1/seller/products [get]
func (h *ProductHandler) SellerList(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.ErrAuthenticationRequired
	}

	page := pageFromQuery(c)
	result, err := h.service.ListProducts(c.Request().Context(), ports.ProductFilter{Seller: p.Username}, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope(result.Content, page, result.TotalElements))
}

// Update handles PUT /api/v1/admin/product/:productId.
//
// @Summary      Update a product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        productId  path      string          true  "Product id"
// @Param        body       body      productRequest  true  "Product"
// @Success      200        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /api/v1/admin/product/{productId} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("productId"), domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Discount:    req.Discount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/v1/admin/product/:productId.
//
// @Summary      Delete a product
// @Tags         catalog
// @Produce      json
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /api/v1/admin/product/{productId} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	product, err := h.service.DeleteProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// list serves the public listings through the cache.
func (h *ProductHandler) list(c echo.Context, filter ports.ProductFilter) error {
	if body, ok := h.cache.lookup(c); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	page := pageFromQuery(c)
	result, err := h.service.ListProducts(c.Request().Context(), filter, page)
	if err != nil {
		return err
	}
	return h.cache.respond(c, envelope(result.Content, page, result.TotalElements))
}
