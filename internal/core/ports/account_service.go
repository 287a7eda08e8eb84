package ports

import (
	"context"

	"github.com/delispi/storefront-api/internal/core/domain"
)

// AccountService covers the signed-in customer's self-service surface and the
// admin customer console.
type AccountService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)

	ListAddresses(ctx context.Context, userID string) ([]domain.PostalAddress, error)
	AddAddress(ctx context.Context, userID string, a domain.PostalAddress) (*domain.PostalAddress, error)
	UpdateAddress(ctx context.Context, userID, addressID string, a domain.PostalAddress) (*domain.PostalAddress, error)
	DeleteAddress(ctx context.Context, userID, addressID string) error

	Wishlist(ctx context.Context, userID string) ([]domain.Product, error)
	AddToWishlist(ctx context.Context, userID, productID string) error
	RemoveFromWishlist(ctx context.Context, userID, productID string) error

	AdminListCustomers(ctx context.Context) ([]domain.User, error)
	AdminListUsers(ctx context.Context) ([]domain.User, error)
	AdminListRecentUsers(ctx context.Context, limit int) ([]domain.User, error)
	AdminGetCustomer(ctx context.Context, id string) (*domain.User, error)
	AdminUpdateCustomer(ctx context.Context, id string, in UpdateCustomerInput) (*domain.User, error)
	AdminDeleteCustomer(ctx context.Context, id string) error
}
