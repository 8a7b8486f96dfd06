package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
	"github.com/velostore/commerce-api/internal/security/token"
)

// AuthService implements registration and login. Token issuance is delegated
// to the codec; this service never inspects or stores issued tokens.
type AuthService struct {
	users ports.UserRepository
	roles ports.RoleRepository
	codec *token.Codec
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, codec *token.Codec) *AuthService {
	return &AuthService{users: users, roles: roles, codec: codec}
}

// SignUp creates a new account. An authenticated user always carries at
// least ROLE_USER, whatever aliases the request named.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" || in.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if taken, err := s.users.ExistsByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUsernameTaken
	}
	if taken, err := s.users.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrEmailTaken
	}

	roles, err := s.resolveRoles(ctx, in.Roles)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.users.Create(ctx, user)
}

// SignIn verifies the password against the stored hash and issues a session
// token. Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(user.Username)
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

// CurrentUser loads the account behind a principal.
func (s *AuthService) CurrentUser(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// resolveRoles maps request aliases onto existing Role rows and guarantees
// the ROLE_USER floor. Every named role must already exist.
func (s *AuthService) resolveRoles(ctx context.Context, aliases []string) ([]domain.AppRole, error) {
	set := map[domain.AppRole]struct{}{domain.RoleUser: {}}
	for _, alias := range aliases {
		name, ok := domain.ParseAppRole(alias)
		if !ok {
			return nil, domain.ErrRoleNotFound
		}
		set[name] = struct{}{}
	}

	roles := make([]domain.AppRole, 0, len(set))
	for _, name := range []domain.AppRole{domain.RoleUser, domain.RoleSeller, domain.RoleAdmin} {
		if _, want := set[name]; !want {
			continue
		}
		if _, err := s.roles.FindByName(ctx, name); err != nil {
			return nil, err
		}
		roles = append(roles, name)
	}
	return roles, nil
}
