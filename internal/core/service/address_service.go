package service

import (
	"context"
	"time"

	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
)

// AddressService implements delivery address management. Updates are owner
// scoped; deletion is an administrative action routed through the policy.
type AddressService struct {
	addresses ports.AddressRepository
}

func NewAddressService(addresses ports.AddressRepository) *AddressService {
	return &AddressService{addresses: addresses}
}

func (s *AddressService) Create(ctx context.Context, owner string, a domain.Address) (*domain.Address, error) {
	now := time.Now().UTC()
	a.Owner = owner
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.addresses.Create(ctx, &a)
}

func (s *AddressService) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	return s.addresses.FindByID(ctx, id)
}

func (s *AddressService) ListAll(ctx context.Context) ([]domain.Address, error) {
	return s.addresses.ListAll(ctx)
}

func (s *AddressService) ListOwn(ctx context.Context, owner string) ([]domain.Address, error) {
	return s.addresses.ListByOwner(ctx, owner)
}

func (s *AddressService) Update(ctx context.Context, owner, id string, a domain.Address) (*domain.Address, error) {
	existing, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Owner != owner {
		return nil, domain.ErrNotResourceOwner
	}

	existing.Street = a.Street
	existing.BuildingName = a.BuildingName
	existing.City = a.City
	existing.State = a.State
	existing.Country = a.Country
	existing.Pincode = a.Pincode
	existing.UpdatedAt = time.Now().UTC()

	if err := s.addresses.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *AddressService) Delete(ctx context.Context, id string) (*domain.Address, error) {
	existing, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.addresses.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}
