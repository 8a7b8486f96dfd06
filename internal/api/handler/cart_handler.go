package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/velostore/commerce-api/internal/api/middleware"
	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
)

// CartHandler handles HTTP requests for the authenticated user's cart. All
// cart routes sit under the policy's AuthenticatedOnly default.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Add handles POST /api/v1/carts/products/:productId/quantity/:quantity.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Produce      json
// @Param        productId  path      string  true  "Product id"
// @Param        quantity   path      int     true  "Quantity"
// @Success      201        {object}  map[string]any
// @Failure      400        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /api/v1/carts/products/{productId}/quantity/{quantity} [post]
func (h *CartHandler) Add(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.ErrAuthenticationRequired
	}

	quantity, err := strconv.Atoi(c.Param("quantity"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must be an integer")
	}

	cart, err := h.service.AddProduct(c.Request().Context(), p.Username, c.Param("productId"), quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cart)
}

// Get handles GET /api/v1/carts/users/cart.
//
// @Summary      Get the current user's cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/v1/carts/users/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.ErrAuthenticationRequired
	}

	cart, err := h.service.GetCart(c.Request().Context(), p.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// UpdateQuantity handles PUT /api/v1/cart/products/:productId/quantity/:operation
// where operation is "add" or "delete".
//
// @Summary      Adjust a cart line by one
// @Tags         cart
// @Produce      json
// @Param        productId  path      string  true  "Product id"
// @Param        operation  path      string  true  "add or delete"
// @Success      200        {object}  map[string]any
// @Failure      400        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /api/v1/cart/products/{productId}/quantity/{operation} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.ErrAuthenticationRequired
	}

	var delta int
	switch c.Param("operation") {
	case "add":
		delta = 1
	case "delete":
		delta = -1
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "operation must be add or delete")
	}

	cart, err := h.service.UpdateQuantity(c.Request().Context(), p.Username, c.Param("productId"), delta)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// Remove handles DELETE /api/v1/carts/product/:productId.
//
// @Summary      Remove a product from the cart
// @Tags         cart
// @Produce      json
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /api/v1/carts/product/{productId} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.ErrAuthenticationRequired
	}

	cart, err := h.service.RemoveProduct(c.Request().Context(), p.Username, c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}
