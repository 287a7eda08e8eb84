package ports

import (
	"context"

	"github.com/delispi/storefront-api/internal/core/domain"
)

type ProductInput struct {
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64
	CategoryID    string
	StockQuantity int
	SKU           string
	Image         string
	Status        string
}

// CatalogService serves the public storefront listing and the admin product
// CRUD.
type CatalogService interface {
	ListProducts(ctx context.Context, f ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)

	AdminListProducts(ctx context.Context) ([]domain.Product, error)
	AdminGetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
