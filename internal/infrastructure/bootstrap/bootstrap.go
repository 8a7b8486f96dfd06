// Package bootstrap seeds the baseline roles and accounts at startup. The
// seeder is idempotent: it runs on every process start, before the server
// accepts traffic, without duplicating rows or resetting the password of any
// account that already exists.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
)

var baselineRoles = []domain.AppRole{domain.RoleUser, domain.RoleSeller, domain.RoleAdmin}

var baselineUsers = []struct {
	username string
	email    string
	password string
	roles    []domain.AppRole
}{
	{"user1", "user1@example.com", "password1", []domain.AppRole{domain.RoleUser}},
	{"seller1", "seller1@example.com", "password2", []domain.AppRole{domain.RoleSeller}},
	{"admin", "admin@example.com", "adminPass", []domain.AppRole{domain.RoleUser, domain.RoleSeller, domain.RoleAdmin}},
}

// Seeder ensures the baseline roles and users exist with their role
// assignments.
type Seeder struct {
	users ports.UserRepository
	roles ports.RoleRepository
	log   zerolog.Logger
}

func NewSeeder(users ports.UserRepository, roles ports.RoleRepository, log zerolog.Logger) *Seeder {
	return &Seeder{users: users, roles: roles, log: log}
}

// Run seeds roles, then users, then role assignments. Role assignments are
// reapplied on every run; passwords are only written when the account is
// first created.
func (s *Seeder) Run(ctx context.Context) error {
	for _, name := range baselineRoles {
		if err := s.ensureRole(ctx, name); err != nil {
			return err
		}
	}

	for _, u := range baselineUsers {
		if err := s.ensureUser(ctx, u.username, u.email, u.password); err != nil {
			return err
		}
		if err := s.users.ReplaceRoles(ctx, u.username, u.roles); err != nil {
			return fmt.Errorf("assign roles to %s: %w", u.username, err)
		}
	}
	return nil
}

func (s *Seeder) ensureRole(ctx context.Context, name domain.AppRole) error {
	_, err := s.roles.FindByName(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrRoleNotFound) {
		return fmt.Errorf("look up role %s: %w", name, err)
	}

	if _, err := s.roles.Create(ctx, &domain.Role{Name: name}); err != nil {
		return fmt.Errorf("create role %s: %w", name, err)
	}
	s.log.Info().Str("role", string(name)).Msg("created baseline role")
	return nil
}

func (s *Seeder) ensureUser(ctx context.Context, username, email, password string) error {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("look up user %s: %w", username, err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password for %s: %w", username, err)
	}

	now := time.Now().UTC()
	if _, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return fmt.Errorf("create user %s: %w", username, err)
	}
	s.log.Info().Str("username", username).Msg("created baseline user")
	return nil
}
