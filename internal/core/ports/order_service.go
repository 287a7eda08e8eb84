package ports

import (
	"context"

	"github.com/delispi/storefront-api/internal/core/domain"
)

type CreateOrderInput struct {
	UserID          string
	Items           []domain.OrderItem
	ShippingAddress domain.PostalAddress
	BillingAddress  domain.PostalAddress
	TotalAmount     float64
}

type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Order, error)

	AdminList(ctx context.Context) ([]domain.Order, error)
	AdminListRecent(ctx context.Context, limit int) ([]domain.Order, error)
	AdminGet(ctx context.Context, id string) (*domain.Order, error)
	AdminUpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}
