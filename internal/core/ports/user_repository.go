package ports

import (
	"context"
	"time"

	"github.com/delispi/storefront-api/internal/core/domain"
)

// UserRepository is the persistence boundary for accounts. FindByID is the
// lookup the auth gate performs on every protected request.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	AddToWishlist(ctx context.Context, id, productID string) error
	RemoveFromWishlist(ctx context.Context, id, productID string) error

	// Admin console queries.
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	ListRecent(ctx context.Context, limit int) ([]domain.User, error)
	UpdateCustomer(ctx context.Context, id string, in UpdateCustomerInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error

	// CountCreatedBetween counts accounts created within [start, end].
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Phone     string
}

type UpdateCustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Status    string
}
