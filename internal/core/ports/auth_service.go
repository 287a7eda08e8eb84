package ports

import (
	"context"

	"github.com/delispi/storefront-api/internal/core/domain"
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// AuthService issues credentials and resolves them back into principals.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Authenticate validates a raw Authorization header value and resolves it
	// to a live principal. The failure taxonomy:
	//   - domain.ErrMissingCredential: header absent or not "Bearer <token>"
	//   - domain.ErrInvalidCredential: bad signature/structure, or the
	//     referenced user no longer exists
	//   - domain.ErrCredentialExpired: verified but past its lifetime
	Authenticate(ctx context.Context, rawHeader string) (*domain.Principal, error)

	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
