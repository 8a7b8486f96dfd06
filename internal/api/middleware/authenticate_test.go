package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/velostore/commerce-api/internal/api/metrics"
	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/security/cookie"
	"github.com/velostore/commerce-api/internal/security/token"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	findErr error
}

func (s *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := s.users[username]
	return ok, nil
}

func (s *stubUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

func (s *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	s.users[u.Username] = u
	return u, nil
}

func (s *stubUserRepo) ReplaceRoles(_ context.Context, username string, roles []domain.AppRole) error {
	if u, ok := s.users[username]; ok {
		u.Roles = roles
	}
	return nil
}

func authSetup() (*token.Codec, *cookie.Transport, *stubUserRepo) {
	codec := token.NewCodec("test-secret-used-only-in-tests", time.Hour)
	transport := cookie.NewTransport("session", "/api/v1")
	repo := &stubUserRepo{users: map[string]*domain.User{
		"alice": {
			Username: "alice",
			Roles:    []domain.AppRole{domain.RoleUser, domain.RoleAdmin},
		},
	}}
	return codec, transport, repo
}

func TestAuthenticate_NoCookie(t *testing.T) {
	codec, transport, repo := authSetup()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(codec, transport, repo, zerolog.Nop())(func(c echo.Context) error {
		called = true
		if _, ok := Principal(c); ok {
			t.Fatalf("expected anonymous context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_ValidCookie(t *testing.T) {
	codec, transport, repo := authSetup()
	signed, err := codec.Issue("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/categories", nil)
	req.AddCookie(&http.Cookie{Name: transport.Name(), Value: signed})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(codec, transport, repo, zerolog.Nop())(func(c echo.Context) error {
		p, ok := Principal(c)
		if !ok {
			t.Fatalf("principal not installed")
		}
		if p.Username != "alice" {
			t.Fatalf("unexpected principal %q", p.Username)
		}
		if !p.HasRole(domain.RoleAdmin) {
			t.Fatalf("roles not loaded from store")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthenticate_BadTokenContinuesAnonymous(t *testing.T) {
	codec, transport, repo := authSetup()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/products", nil)
	req.AddCookie(&http.Cookie{Name: transport.Name(), Value: "not-a-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(codec, transport, repo, zerolog.Nop())(func(c echo.Context) error {
		called = true
		if _, ok := Principal(c); ok {
			t.Fatalf("expected anonymous context after rejected token")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_StoreFailureContinuesAnonymous(t *testing.T) {
	codec, transport, repo := authSetup()
	repo.findErr = errors.New("connection refused")
	signed, err := codec.Issue("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	unknownBefore := testutil.ToFloat64(metrics.TokenVerificationsTotal.WithLabelValues("unknown_subject"))
	failedBefore := testutil.ToFloat64(metrics.TokenVerificationsTotal.WithLabelValues("lookup_failed"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/products", nil)
	req.AddCookie(&http.Cookie{Name: transport.Name(), Value: signed})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(codec, transport, repo, zerolog.Nop())(func(c echo.Context) error {
		called = true
		if _, ok := Principal(c); ok {
			t.Fatalf("expected anonymous context when the store is down")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}

	// An outage must not count as unknown subjects.
	if got := testutil.ToFloat64(metrics.TokenVerificationsTotal.WithLabelValues("unknown_subject")); got != unknownBefore {
		t.Fatalf("unknown_subject moved from %v to %v on a store failure", unknownBefore, got)
	}
	if got := testutil.ToFloat64(metrics.TokenVerificationsTotal.WithLabelValues("lookup_failed")); got != failedBefore+1 {
		t.Fatalf("lookup_failed = %v, want %v", got, failedBefore+1)
	}
}

func TestAuthenticate_UnknownSubjectContinuesAnonymous(t *testing.T) {
	codec, transport, repo := authSetup()
	signed, err := codec.Issue("ghost")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/products", nil)
	req.AddCookie(&http.Cookie{Name: transport.Name(), Value: signed})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(codec, transport, repo, zerolog.Nop())(func(c echo.Context) error {
		if _, ok := Principal(c); ok {
			t.Fatalf("expected anonymous context for deleted account")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
