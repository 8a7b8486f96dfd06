package ports

import (
	"context"

	"github.com/velostore/commerce-api/internal/core/domain"
)

// CartRepository persists per-user carts, one cart per username.
type CartRepository interface {
	FindByOwner(ctx context.Context, owner string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) (*domain.Cart, error)
}

// CartService covers cart operations for the authenticated user.
type CartService interface {
	AddProduct(ctx context.Context, owner, productID string, quantity int) (*domain.Cart, error)
	GetCart(ctx context.Context, owner string) (*domain.Cart, error)
	// UpdateQuantity adjusts a line by delta ("add" +1 / "delete" -1 in the
	// HTTP surface); a line reaching zero is removed.
	UpdateQuantity(ctx context.Context, owner, productID string, delta int) (*domain.Cart, error)
	RemoveProduct(ctx context.Context, owner, productID string) (*domain.Cart, error)
}
