package service

import (
	"context"
	"errors"
	"time"

	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
)

// CartService implements the per-user shopping cart. Line prices snapshot
// the product's special price whenever the line is touched.
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductRepository
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

func (s *CartService) AddProduct(ctx context.Context, owner, productID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.ErrInsufficientStock
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Quantity < quantity {
		return nil, domain.ErrInsufficientStock
	}

	cart, err := s.loadOrCreate(ctx, owner)
	if err != nil {
		return nil, err
	}

	if line := cart.Find(productID); line != nil {
		if product.Quantity < line.Quantity+quantity {
			return nil, domain.ErrInsufficientStock
		}
		line.Quantity += quantity
		line.ProductPrice = product.SpecialPrice
		line.Discount = product.Discount
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			Quantity:     quantity,
			Discount:     product.Discount,
			ProductPrice: product.SpecialPrice,
		})
	}

	cart.Recalculate()
	cart.Touch(time.Now().UTC())
	return s.carts.Save(ctx, cart)
}

func (s *CartService) GetCart(ctx context.Context, owner string) (*domain.Cart, error) {
	return s.carts.FindByOwner(ctx, owner)
}

func (s *CartService) UpdateQuantity(ctx context.Context, owner, productID string, delta int) (*domain.Cart, error) {
	cart, err := s.carts.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	line := cart.Find(productID)
	if line == nil {
		return nil, domain.ErrProductNotInCart
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	next := line.Quantity + delta
	switch {
	case next <= 0:
		cart.Remove(productID)
	case product.Quantity < next:
		return nil, domain.ErrInsufficientStock
	default:
		line.Quantity = next
		line.ProductPrice = product.SpecialPrice
		line.Discount = product.Discount
	}

	cart.Recalculate()
	cart.Touch(time.Now().UTC())
	return s.carts.Save(ctx, cart)
}

func (s *CartService) RemoveProduct(ctx context.Context, owner, productID string) (*domain.Cart, error) {
	cart, err := s.carts.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !cart.Remove(productID) {
		return nil, domain.ErrProductNotInCart
	}

	cart.Recalculate()
	cart.Touch(time.Now().UTC())
	return s.carts.Save(ctx, cart)
}

func (s *CartService) loadOrCreate(ctx context.Context, owner string) (*domain.Cart, error) {
	cart, err := s.carts.FindByOwner(ctx, owner)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, domain.ErrCartNotFound) {
		return nil, err
	}
	now := time.Now().UTC()
	return &domain.Cart{Owner: owner, CreatedAt: now, UpdatedAt: now}, nil
}
