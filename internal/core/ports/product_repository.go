package ports

import (
	"context"
	"time"

	"github.com/delispi/storefront-api/internal/core/domain"
)

// ProductFilter narrows the public product listing. Search matches name or
// description case-insensitively.
type ProductFilter struct {
	CategoryID string
	Search     string
	Limit      int64
	Offset     int64
}

// CategoryCount is one slice of the admin category-distribution chart.
type CategoryCount struct {
	CategoryID string
	Name       string
	Count      int64
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindActiveByID is the storefront detail lookup: a product in any other
	// status reads as not-found.
	FindActiveByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error

	// ListActive returns storefront-visible products matching the filter.
	ListActive(ctx context.Context, f ProductFilter) ([]domain.Product, error)
	// ListAll returns every product, newest first, for the admin console.
	ListAll(ctx context.Context) ([]domain.Product, error)

	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	// CountByCategory returns the top categories by product count.
	CountByCategory(ctx context.Context, limit int64) ([]CategoryCount, error)
}

type CategoryRepository interface {
	// List returns every category for the admin console.
	List(ctx context.Context) ([]domain.Category, error)
	// ListActive returns the categories shown in storefront navigation.
	ListActive(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
}
