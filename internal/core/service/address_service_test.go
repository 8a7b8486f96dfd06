package service

import (
	"context"
	"errors"
	"testing"

	"github.com/velostore/commerce-api/internal/core/domain"
)

func TestAddressUpdate_OwnerOnly(t *testing.T) {
	addresses := newFakeAddresses()
	svc := NewAddressService(addresses)

	created, err := svc.Create(context.Background(), "alice", domain.Address{
		Street: "1 Main St", City: "Springfield", State: "IL", Country: "US", Pincode: "62701",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(context.Background(), "bob", created.ID, domain.Address{Street: "2 Oak St"})
	if !errors.Is(err, domain.ErrNotResourceOwner) {
		t.Fatalf("expected ErrNotResourceOwner, got %v", err)
	}

	updated, err := svc.Update(context.Background(), "alice", created.ID, domain.Address{
		Street: "2 Oak St", City: "Springfield", State: "IL", Country: "US", Pincode: "62701",
	})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Street != "2 Oak St" {
		t.Fatalf("street = %q", updated.Street)
	}
	if updated.Owner != "alice" {
		t.Fatalf("owner changed to %q", updated.Owner)
	}
}

func TestAddressListOwn_FiltersByOwner(t *testing.T) {
	addresses := newFakeAddresses()
	svc := NewAddressService(addresses)

	if _, err := svc.Create(context.Background(), "alice", domain.Address{Street: "1 Main St"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "bob", domain.Address{Street: "9 Elm St"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	own, err := svc.ListOwn(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list own: %v", err)
	}
	if len(own) != 1 || own[0].Owner != "alice" {
		t.Fatalf("own = %+v", own)
	}
}

func TestAddressDelete_UnknownID(t *testing.T) {
	svc := NewAddressService(newFakeAddresses())

	_, err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}
