package ports

import (
	"context"

	"github.com/velostore/commerce-api/internal/core/domain"
)

// AddressRepository persists delivery addresses.
type AddressRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Address, error)
	ListAll(ctx context.Context) ([]domain.Address, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.Address, error)
	Create(ctx context.Context, a *domain.Address) (*domain.Address, error)
	Update(ctx context.Context, a *domain.Address) error
	Delete(ctx context.Context, id string) error
}

// AddressService covers address operations; ownership checks live here,
// not in the handlers.
type AddressService interface {
	Create(ctx context.Context, owner string, a domain.Address) (*domain.Address, error)
	GetByID(ctx context.Context, id string) (*domain.Address, error)
	ListAll(ctx context.Context) ([]domain.Address, error)
	ListOwn(ctx context.Context, owner string) ([]domain.Address, error)
	Update(ctx context.Context, owner, id string, a domain.Address) (*domain.Address, error)
	Delete(ctx context.Context, id string) (*domain.Address, error)
}
