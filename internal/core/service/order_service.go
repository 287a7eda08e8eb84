package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/delispi/storefront-api/internal/core/domain"
	"github.com/delispi/storefront-api/internal/core/ports"
)

type OrderService struct {
	orders ports.OrderRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, users ports.UserRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, users: users, logger: logger}
}

func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 || in.ShippingAddress.Street == "" || in.TotalAmount <= 0 {
		return nil, domain.ErrInvalidOrder
	}

	now := time.Now().UTC()
	order, err := s.orders.Create(ctx, &domain.Order{
		UserID:          in.UserID,
		Items:           in.Items,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  in.BillingAddress,
		TotalAmount:     in.TotalAmount,
		Status:          domain.OrderPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("user_id", in.UserID).
		Float64("total", in.TotalAmount).
		Int("items", len(in.Items)).
		Msg("order created")

	return order, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) AdminList(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	s.attachCustomers(ctx, orders)
	return orders, nil
}

func (s *OrderService) AdminListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	orders, err := s.orders.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	s.attachCustomers(ctx, orders)
	return orders, nil
}

func (s *OrderService) AdminGet(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user, err := s.users.FindByID(ctx, order.UserID); err == nil {
		order.Customer = &domain.OrderUser{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		}
	}
	return order, nil
}

func (s *OrderService) AdminUpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	order, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("order_id", id).Str("status", string(status)).Msg("order status updated")
	return order, nil
}

// attachCustomers resolves user_id references to customer projections for
// admin listings. Missing users are left nil: an order whose account has been
// deleted still shows.
func (s *OrderService) attachCustomers(ctx context.Context, orders []domain.Order) {
	cache := make(map[string]*domain.OrderUser)
	for i := range orders {
		uid := orders[i].UserID
		if cu, ok := cache[uid]; ok {
			orders[i].Customer = cu
			continue
		}
		user, err := s.users.FindByID(ctx, uid)
		if err != nil {
			cache[uid] = nil
			continue
		}
		cu := &domain.OrderUser{FirstName: user.FirstName, LastName: user.LastName, Email: user.Email}
		cache[uid] = cu
		orders[i].Customer = cu
	}
}
