package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/delispi/storefront-api/internal/core/domain"
	"github.com/delispi/storefront-api/internal/core/ports"
)

const defaultProductPageSize = 20

type CatalogService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, categories ports.CategoryRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, categories: categories, logger: logger}
}

func (s *CatalogService) ListProducts(ctx context.Context, f ports.ProductFilter) ([]domain.Product, error) {
	if f.Limit <= 0 {
		f.Limit = defaultProductPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.products.ListActive(ctx, f)
}

// GetProduct serves the public detail page, so only active products resolve.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindActiveByID(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListActive(ctx)
}

func (s *CatalogService) AdminListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.attachCategoryNames(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogService) AdminGetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat, err := s.categories.FindByID(ctx, product.CategoryID); err == nil {
		product.CategoryName = cat.Name
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	status := in.Status
	if status == "" {
		status = domain.ProductActive
	}
	product, err := s.products.Create(ctx, &domain.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		CategoryID:    in.CategoryID,
		StockQuantity: in.StockQuantity,
		SKU:           in.SKU,
		Image:         in.Image,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("product_id", product.ID).Str("sku", product.SKU).Msg("product created")
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	status := in.Status
	if status == "" {
		status = domain.ProductActive
	}
	return s.products.Update(ctx, id, &domain.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		CategoryID:    in.CategoryID,
		StockQuantity: in.StockQuantity,
		SKU:           in.SKU,
		Image:         in.Image,
		Status:        status,
		UpdatedAt:     time.Now().UTC(),
	})
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// attachCategoryNames resolves category_id references to display names for
// the admin listing. One pass over the categories collection covers every
// product in the slice.
func (s *CatalogService) attachCategoryNames(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	for i := range products {
		products[i].CategoryName = names[products[i].CategoryID]
	}
	return nil
}
