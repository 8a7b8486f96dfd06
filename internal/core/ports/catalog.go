package ports

import (
	"context"

	"github.com/velostore/commerce-api/internal/core/domain"
)

// PageRequest carries pagination and sorting parameters.
type PageRequest struct {
	PageNumber int
	PageSize   int
	SortBy     string
	SortOrder  string // "asc" or "desc"
}

// CategoryPage is a page of categories plus the counts handlers need to
// build the pagination envelope.
type CategoryPage struct {
	Content       []domain.Category
	TotalElements int64
}

// ProductPage is a page of products.
type ProductPage struct {
	Content       []domain.Product
	TotalElements int64
}

// CategoryRepository persists categories. Names are unique.
type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context, page PageRequest) (*CategoryPage, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID string
	Keyword    string
	Seller     string
}

// ProductRepository persists products.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByName(ctx context.Context, categoryID, name string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter, page PageRequest) (*ProductPage, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// CatalogCache caches rendered catalog pages. Implementations must treat a
// miss and a backend failure identically: return ok=false and let the
// caller fall through to the repository.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	// Invalidate discards every cached catalog page.
	Invalidate(ctx context.Context)
}

// CatalogService covers category and product operations.
type CatalogService interface {
	ListCategories(ctx context.Context, page PageRequest) (*CategoryPage, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) (*domain.Category, error)

	CreateProduct(ctx context.Context, categoryID, seller string, p domain.Product) (*domain.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter, page PageRequest) (*ProductPage, error)
	UpdateProduct(ctx context.Context, id string, p domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) (*domain.Product, error)
}
