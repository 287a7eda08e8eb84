package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/delispi/storefront-api/internal/core/domain"
)

type stubAddressRepo struct {
	addresses []domain.PostalAddress
}

func (r *stubAddressRepo) ListByUser(_ context.Context, userID string) ([]domain.PostalAddress, error) {
	var out []domain.PostalAddress
	for _, a := range r.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAddressRepo) Create(_ context.Context, a *domain.PostalAddress) (*domain.PostalAddress, error) {
	created := *a
	created.ID = fmt.Sprintf("addr-%d", len(r.addresses)+1)
	r.addresses = append(r.addresses, created)
	return &created, nil
}

func (r *stubAddressRepo) Update(_ context.Context, id, userID string, a *domain.PostalAddress) (*domain.PostalAddress, error) {
	for i := range r.addresses {
		if r.addresses[i].ID == id && r.addresses[i].UserID == userID {
			updated := *a
			updated.ID = id
			updated.UserID = userID
			r.addresses[i] = updated
			return &updated, nil
		}
	}
	return nil, domain.ErrAddressNotFound
}

func (r *stubAddressRepo) Delete(_ context.Context, id, userID string) error {
	for i := range r.addresses {
		if r.addresses[i].ID == id && r.addresses[i].UserID == userID {
			r.addresses = append(r.addresses[:i], r.addresses[i+1:]...)
			return nil
		}
	}
	return domain.ErrAddressNotFound
}

func newTestAccountService(users *stubUserRepo, addresses *stubAddressRepo, products *stubProductRepo) *AccountService {
	return NewAccountService(users, addresses, products, zerolog.Nop())
}

// Wishlist entries whose product has since been removed from the catalog are
// dropped from the response instead of failing the whole listing.
func TestWishlist_SkipsRemovedProducts(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(t, users, "ada@example.com", "pw", domain.RoleUser)
	users.users[user.ID].Wishlist = []string{"p1", "gone", "p2"}

	products := &stubProductRepo{products: []domain.Product{
		{ID: "p1", Name: "Manchego", Status: domain.ProductActive},
		{ID: "p2", Name: "Brie", Status: domain.ProductActive},
	}}
	svc := newTestAccountService(users, &stubAddressRepo{}, products)

	list, err := svc.Wishlist(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("wishlist: %v", err)
	}
	if len(list) != 2 || list[0].ID != "p1" || list[1].ID != "p2" {
		t.Fatalf("unexpected wishlist: %+v", list)
	}
}

func TestAddToWishlist_UnknownProduct(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(t, users, "ada@example.com", "pw", domain.RoleUser)
	svc := newTestAccountService(users, &stubAddressRepo{}, &stubProductRepo{})

	if err := svc.AddToWishlist(context.Background(), user.ID, "nope"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddresses_OwnerScoped(t *testing.T) {
	users := newStubUserRepo()
	owner := seedUser(t, users, "ada@example.com", "pw", domain.RoleUser)
	other := seedUser(t, users, "eve@example.com", "pw", domain.RoleUser)

	addresses := &stubAddressRepo{}
	svc := newTestAccountService(users, addresses, &stubProductRepo{})

	created, err := svc.AddAddress(context.Background(), owner.ID, domain.PostalAddress{
		FirstName: "Ada", LastName: "Lovelace", Street: "1 Main St", City: "Springfield", ZipCode: "12345",
	})
	if err != nil {
		t.Fatalf("add address: %v", err)
	}
	if created.UserID != owner.ID {
		t.Fatalf("address not bound to owner: %+v", created)
	}

	// Another user touching the same id reads as not-found.
	if _, err := svc.UpdateAddress(context.Background(), other.ID, created.ID, *created); !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound for foreign update, got %v", err)
	}
	if err := svc.DeleteAddress(context.Background(), other.ID, created.ID); !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound for foreign delete, got %v", err)
	}
	if err := svc.DeleteAddress(context.Background(), owner.ID, created.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestAdminListCustomers_FiltersAdmins(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "ada@example.com", "pw", domain.RoleUser)
	seedUser(t, users, "root@example.com", "pw", domain.RoleAdmin)
	svc := newTestAccountService(users, &stubAddressRepo{}, &stubProductRepo{})

	customers, err := svc.AdminListCustomers(context.Background())
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(customers) != 1 || customers[0].Email != "ada@example.com" {
		t.Fatalf("expected only non-admin accounts, got %+v", customers)
	}
}
