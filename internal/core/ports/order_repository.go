package ports

import (
	"context"
	"time"

	"github.com/delispi/storefront-api/internal/core/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)

	// CountCreatedBetween counts all orders created within [start, end].
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	// SumCompletedBetween sums total_amount over completed orders created
	// within [start, end]. Orders in any other status contribute nothing.
	SumCompletedBetween(ctx context.Context, start, end time.Time) (float64, error)
}

type AddressRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.PostalAddress, error)
	Create(ctx context.Context, a *domain.PostalAddress) (*domain.PostalAddress, error)
	// Update and Delete are scoped to the owning user; a mismatch reads as
	// not-found, never as someone else's address.
	Update(ctx context.Context, id, userID string, a *domain.PostalAddress) (*domain.PostalAddress, error)
	Delete(ctx context.Context, id, userID string) error
}
