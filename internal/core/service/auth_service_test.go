package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
	"github.com/velostore/commerce-api/internal/security/token"
)

func newAuthService() (*AuthService, *fakeUsers) {
	users := newFakeUsers()
	roles := newFakeRoles(domain.RoleUser, domain.RoleSeller, domain.RoleAdmin)
	codec := token.NewCodec("test-secret-used-only-in-tests", time.Hour)
	return NewAuthService(users, roles, codec), users
}

func TestSignUp_DefaultsToUserRole(t *testing.T) {
	svc, _ := newAuthService()

	user, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pass1234",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if len(user.Roles) != 1 || user.Roles[0] != domain.RoleUser {
		t.Fatalf("roles = %v, want [ROLE_USER]", user.Roles)
	}
	if user.PasswordHash == "pass1234" {
		t.Fatalf("password stored in the clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")) != nil {
		t.Fatalf("stored hash does not verify the password")
	}
}

func TestSignUp_SellerKeepsUserFloor(t *testing.T) {
	svc, _ := newAuthService()

	user, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "pass1234",
		Roles:    []string{"seller"},
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if !user.HasRole(domain.RoleUser) || !user.HasRole(domain.RoleSeller) {
		t.Fatalf("roles = %v, want user floor plus seller", user.Roles)
	}
}

func TestSignUp_UnknownRoleAlias(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "mallory",
		Email:    "mallory@example.com",
		Password: "pass1234",
		Roles:    []string{"superuser"},
	})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	svc, _ := newAuthService()

	in := ports.SignUpInput{Username: "alice", Email: "alice@example.com", Password: "pass1234"}
	if _, err := svc.SignUp(context.Background(), in); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	in.Email = "other@example.com"
	_, err := svc.SignUp(context.Background(), in)
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()

	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "alice", Email: "alice@example.com", Password: "pass1234",
	}); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	_, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "alice2", Email: "alice@example.com", Password: "pass1234",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignIn_IssuesVerifiableToken(t *testing.T) {
	svc, _ := newAuthService()
	codec := token.NewCodec("test-secret-used-only-in-tests", time.Hour)

	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "alice", Email: "alice@example.com", Password: "pass1234",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	signed, user, err := svc.SignIn(context.Background(), "alice", "pass1234")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("user = %q", user.Username)
	}

	subject, err := codec.Verify(signed)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("token subject = %q", subject)
	}
}

func TestSignIn_WrongPassword(t *testing.T) {
	svc, _ := newAuthService()

	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "alice", Email: "alice@example.com", Password: "pass1234",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, _, err := svc.SignIn(context.Background(), "alice", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignIn_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	svc, _ := newAuthService()

	_, _, err := svc.SignIn(context.Background(), "nobody", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown username, got %v", err)
	}
}
