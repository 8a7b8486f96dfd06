package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velostore/commerce-api/internal/api/metrics"
	"github.com/velostore/commerce-api/internal/api/middleware"
	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
	"github.com/velostore/commerce-api/internal/security/cookie"
)

// AuthHandler exposes signup, signin and signout. Signin attaches the
// session cookie; signout replaces it with a clearing cookie. There is no
// server-side session to tear down in either direction.
type AuthHandler struct {
	service   ports.AuthService
	transport *cookie.Transport
}

func NewAuthHandler(service ports.AuthService, transport *cookie.Transport) *AuthHandler {
	return &AuthHandler{service: service, transport: transport}
}

// Signup registers a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.SignUp(c.Request().Context(), ports.SignUpInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	}); err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered successfully!"})
}

// Signin authenticates a user and sets the session cookie.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  userInfoResponse
// @Failure      401   {object}  map[string]any
// @Router       /api/v1/auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	signed, user, err := h.service.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.transport.Attach(c.Response(), signed)
	return c.JSON(http.StatusOK, toUserInfo(user))
}

// Signout clears the session cookie.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/v1/auth/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	h.transport.Clear(c.Response())
	return c.JSON(http.StatusOK, messageResponse{Message: "You've been signed out!"})
}

// Username returns the current principal's username as plain text.
//
// @Summary      Current username
// @Tags         auth
// @Produce      plain
// @Success      200  {string}  string
// @Failure      401  {object}  map[string]any
// @Router       /api/v1/auth/username [get]
func (h *AuthHandler) Username(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.ErrAuthenticationRequired
	}
	return c.String(http.StatusOK, p.Username)
}

// User returns the current principal's account details.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userInfoResponse
// @Failure      401  {object}  map[string]any
// @Router       /api/v1/auth/user [get]
func (h *AuthHandler) User(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.ErrAuthenticationRequired
	}

	user, err := h.service.CurrentUser(c.Request().Context(), p.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserInfo(user))
}

func toUserInfo(u *domain.User) userInfoResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}
	return userInfoResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Roles:    roles,
	}
}
