package service

import (
	"context"
	"errors"
	"time"

	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
)

// CatalogService implements category and product management. Every mutation
// invalidates the listing cache; reads go straight to the repositories (the
// cache sits in front of the HTTP handlers, not here).
type CatalogService struct {
	categories ports.CategoryRepository
	products   ports.ProductRepository
	cache      ports.CatalogCache
}

func NewCatalogService(categories ports.CategoryRepository, products ports.ProductRepository, cache ports.CatalogCache) *CatalogService {
	return &CatalogService{categories: categories, products: products, cache: cache}
}

func (s *CatalogService) ListCategories(ctx context.Context, page ports.PageRequest) (*ports.CategoryPage, error) {
	return s.categories.List(ctx, normalizePage(page, "name"))
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if _, err := s.categories.FindByName(ctx, name); err == nil {
		return nil, domain.ErrCategoryExists
	} else if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.categories.Create(ctx, &domain.Category{Name: name, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return created, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id, name string) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	category.UpdatedAt = time.Now().UTC()
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return category, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, categoryID, seller string, p domain.Product) (*domain.Product, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	if _, err := s.products.FindByName(ctx, categoryID, p.Name); err == nil {
		return nil, domain.ErrProductExists
	} else if !errors.Is(err, domain.ErrProductNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	p.CategoryID = categoryID
	p.Seller = seller
	p.CreatedAt = now
	p.UpdatedAt = now
	p.ApplyDiscount()

	created, err := s.products.Create(ctx, &p)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return created, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, filter ports.ProductFilter, page ports.PageRequest) (*ports.ProductPage, error) {
	if filter.CategoryID != "" {
		if _, err := s.categories.FindByID(ctx, filter.CategoryID); err != nil {
			return nil, err
		}
	}
	return s.products.List(ctx, filter, normalizePage(page, "name"))
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, p domain.Product) (*domain.Product, error) {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = p.Name
	existing.Description = p.Description
	existing.Quantity = p.Quantity
	existing.Price = p.Price
	existing.Discount = p.Discount
	existing.UpdatedAt = time.Now().UTC()
	existing.ApplyDiscount()

	if err := s.products.Update(ctx, existing); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return existing, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) (*domain.Product, error) {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return existing, nil
}

// normalizePage clamps pagination inputs to sane defaults.
func normalizePage(page ports.PageRequest, defaultSort string) ports.PageRequest {
	if page.PageNumber < 0 {
		page.PageNumber = 0
	}
	if page.PageSize <= 0 {
		page.PageSize = 10
	}
	if page.PageSize > 100 {
		page.PageSize = 100
	}
	if page.SortBy == "" {
		page.SortBy = defaultSort
	}
	if page.SortOrder != "desc" {
		page.SortOrder = "asc"
	}
	return page
}
