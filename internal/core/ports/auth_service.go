package ports

import (
	"context"

	"github.com/velostore/commerce-api/internal/core/domain"
)

// SignUpInput carries a registration request. Roles holds the short role
// aliases ("user", "seller", "admin"); empty means plain user.
type SignUpInput struct {
	Username string
	Email    string
	Password string
	Roles    []string
}

// AuthService implements signup and signin on top of the credential store
// and the token codec.
type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*domain.User, error)
	// SignIn verifies the password and returns a freshly issued session
	// token alongside the user.
	SignIn(ctx context.Context, username, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, username string) (*domain.User, error)
}
