package ports

import (
	"context"

	"github.com/velostore/commerce-api/internal/core/domain"
)

// UserRepository is the credential store. The auth middleware only ever uses
// the read path; writes happen at signup and during startup seeding.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// ReplaceRoles swaps the user's entire role set; there is no partial
	// role update.
	ReplaceRoles(ctx context.Context, username string, roles []domain.AppRole) error
}

// RoleRepository stores role definitions. Role names are unique.
type RoleRepository interface {
	FindByName(ctx context.Context, name domain.AppRole) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
}
