package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velostore/commerce-api/internal/api/middleware"
	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
)

type addressRequest struct {
	Street       string `json:"street"        validate:"required,min=5"`
	BuildingName string `json:"building_name" validate:"required,min=3"`
	City         string `json:"city"          validate:"required,min=2"`
	State        string `json:"state"         validate:"required,min=2"`
	Country      string `json:"country"       validate:"required,min=2"`
	Pincode      string `json:"pincode"       validate:"required,min=5"`
}

// AddressHandler handles HTTP requests for delivery addresses.
type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

// Create handles POST /api/v1/address.
//
// @Summary      Create an address for the current user
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        body  body      addressRequest  true  "Address"
// @Success      201   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /api/v1/address [post]
func (h *AddressHandler) Create(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.ErrAuthenticationRequired
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	address, err := h.service.Create(c.Request().Context(), p.Username, toAddress(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, address)
}

// ListAll handles GET /api/v1/public/addresses.
//
// @Summary      List all addresses
// @Tags         addresses
// @Produce      json
// @Success      200  {array}  map[string]any
// @Router       /api/v1/public/addresses [get]
func (h *AddressHandler) ListAll(c echo.Context) error {
	addresses, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addresses)
}

// Get handles GET /api/v1/address/:addressId.
//
// @Summary      Get an address by id
// @Tags         addresses
// @Produce      json
// @Param        addressId  path      string  true  "Address id"
// @Success      200        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /api/v1/address/{addressId} [get]
func (h *AddressHandler) Get(c echo.Context) error {
	address, err := h.service.GetByID(c.Request().Context(), c.Param("addressId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, address)
}

// ListOwn handles GET /api/v1/users/addresses.
//
// @Summary      List the current user's addresses
// @Tags         addresses
// @Produce      json
// @Success      200  {array}   map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /api/v1/users/addresses [get]
func (h *AddressHandler) ListOwn(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.ErrAuthenticationRequired
	}

	addresses, err := h.service.ListOwn(c.Request().Context(), p.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addresses)
}

// Update handles PUT /api/v1/address/:addressId.
//
// @Summary      Update one of the current user's addresses
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        addressId  path      string          true  "Address id"
// @Param        body       body      addressRequest  true  "Address"
// @Success      200        {object}  map[string]any
// @Failure      403        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /api/v1/address/{addressId} [put]
func (h *AddressHandler) Update(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.ErrAuthenticationRequired
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	address, err := h.service.Update(c.Request().Context(), p.Username, c.Param("addressId"), toAddress(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, address)
}

// Delete handles DELETE /api/v1/admin/address/:addressId.
//
// @Summary      Delete an address
// @Tags         addresses
// @Produce      json
// @Param        addressId  path      string  true  "Address id"
// @Success      200        {object}  messageResponse
// @Failure      404        {object}  map[string]any
// @Router       /api/v1/admin/address/{addressId} [delete]
func (h *AddressHandler) Delete(c echo.Context) error {
	if _, err := h.service.Delete(c.Request().Context(), c.Param("addressId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Address deleted successfully"})
}

func toAddress(req addressRequest) domain.Address {
	return domain.Address{
		Street:       req.Street,
		BuildingName: req.BuildingName,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		Pincode:      req.Pincode,
	}
}
