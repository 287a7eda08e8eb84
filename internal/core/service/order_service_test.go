package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/delispi/storefront-api/internal/core/domain"
	"github.com/delispi/storefront-api/internal/core/ports"
)

func validOrderInput(userID string) ports.CreateOrderInput {
	return ports.CreateOrderInput{
		UserID: userID,
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Manchego", Price: 12.5, Quantity: 2},
		},
		ShippingAddress: domain.PostalAddress{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Street:    "1 Main St",
			City:      "Springfield",
			ZipCode:   "12345",
		},
		TotalAmount: 25,
	}
}

func TestOrderCreate(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, newStubUserRepo(), zerolog.Nop())

	order, err := svc.Create(context.Background(), validOrderInput("u1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("new orders start pending, got %q", order.Status)
	}
	if order.ID == "" || order.UserID != "u1" {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestOrderCreate_Validation(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{}, newStubUserRepo(), zerolog.Nop())

	noItems := validOrderInput("u1")
	noItems.Items = nil

	noStreet := validOrderInput("u1")
	noStreet.ShippingAddress.Street = ""

	zeroTotal := validOrderInput("u1")
	zeroTotal.TotalAmount = 0

	for name, in := range map[string]ports.CreateOrderInput{
		"no_items":   noItems,
		"no_street":  noStreet,
		"zero_total": zeroTotal,
	} {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidOrder) {
			t.Fatalf("%s: expected ErrInvalidOrder, got %v", name, err)
		}
	}
}

func TestAdminUpdateStatus(t *testing.T) {
	repo := &stubOrderRepo{orders: []domain.Order{
		{ID: "order-1", UserID: "u1", Status: domain.OrderPending, CreatedAt: time.Now()},
	}}
	svc := NewOrderService(repo, newStubUserRepo(), zerolog.Nop())

	order, err := svc.AdminUpdateStatus(context.Background(), "order-1", domain.OrderShipped)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if order.Status != domain.OrderShipped {
		t.Fatalf("status = %q, want shipped", order.Status)
	}

	if _, err := svc.AdminUpdateStatus(context.Background(), "order-1", "teleported"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.AdminUpdateStatus(context.Background(), "missing", domain.OrderShipped); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestAdminList_AttachesCustomers(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(t, users, "ada@example.com", "pw", domain.RoleUser)

	repo := &stubOrderRepo{orders: []domain.Order{
		{ID: "order-1", UserID: owner.ID, Status: domain.OrderPending},
		{ID: "order-2", UserID: "ghost", Status: domain.OrderPending},
	}}
	svc := NewOrderService(repo, users, zerolog.Nop())

	orders, err := svc.AdminList(context.Background())
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if orders[0].Customer == nil || orders[0].Customer.Email != "ada@example.com" {
		t.Fatalf("customer projection missing: %+v", orders[0].Customer)
	}
	// Orders whose account is gone still list, just without the projection.
	if orders[1].Customer != nil {
		t.Fatalf("expected nil customer for deleted account, got %+v", orders[1].Customer)
	}
}
