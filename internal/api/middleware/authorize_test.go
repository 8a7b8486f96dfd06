package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/security/policy"
)

func testTable() *policy.Table {
	return policy.NewTable([]policy.Rule{
		{Prefix: "/api/v1/auth/", Access: policy.Public},
		{Prefix: "/api/v1/public/", Access: policy.Public},
		{Prefix: "/api/v1/admin/", Access: policy.RequiresRole, Role: domain.RoleAdmin},
	})
}

func runAuthorize(t *testing.T, path string, p *domain.Principal) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if p != nil {
		c.Set(principalKey, p)
	}
	handler := Authorize(testTable())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestAuthorize_PublicRouteAnonymous(t *testing.T) {
	if err := runAuthorize(t, "/api/v1/public/products", nil); err != nil {
		t.Fatalf("public route rejected: %v", err)
	}
}

func TestAuthorize_AnonymousOnGatedRoute(t *testing.T) {
	err := runAuthorize(t, "/api/v1/carts/users/cart", nil)
	if !errors.Is(err, domain.ErrAuthenticationRequired) {
		t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
	}
}

func TestAuthorize_MissingRole(t *testing.T) {
	p := &domain.Principal{Username: "bob", Roles: []domain.AppRole{domain.RoleUser}}
	err := runAuthorize(t, "/api/v1/admin/categories", p)
	if !errors.Is(err, domain.ErrInsufficientRole) {
		t.Fatalf("expected ErrInsufficientRole, got %v", err)
	}
}

func TestAuthorize_RoleGranted(t *testing.T) {
	p := &domain.Principal{Username: "root", Roles: []domain.AppRole{domain.RoleUser, domain.RoleAdmin}}
	if err := runAuthorize(t, "/api/v1/admin/categories", p); err != nil {
		t.Fatalf("admin rejected on admin route: %v", err)
	}
}

func TestAuthorize_UnmatchedPathNeedsAuthentication(t *testing.T) {
	err := runAuthorize(t, "/api/v1/orders", nil)
	if !errors.Is(err, domain.ErrAuthenticationRequired) {
		t.Fatalf("expected default-deny for unmatched path, got %v", err)
	}
}
