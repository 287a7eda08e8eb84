package domain

import "errors"

// Auth gate failures. Each case is a distinct sentinel so the HTTP boundary
// can map it to the right status code without inspecting message text.
var (
	// ErrMissingCredential: no bearer credential was presented at all.
	ErrMissingCredential = errors.New("authentication required")
	// ErrCredentialExpired: the token verified but its lifetime has passed.
	// Distinct from ErrInvalidCredential because it signals "log in again",
	// not "malformed request".
	ErrCredentialExpired = errors.New("token expired")
	// ErrInvalidCredential: bad signature/structure, or the token references
	// a user that no longer exists. Both cases look identical to the caller.
	ErrInvalidCredential = errors.New("invalid token")
	// ErrForbidden: authenticated but the role check failed.
	ErrForbidden = errors.New("admin access required")
)

// Login and account errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// Catalog and order errors.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrAddressNotFound  = errors.New("address not found")
	ErrInvalidOrder     = errors.New("missing required order information")
	ErrInvalidStatus    = errors.New("invalid order status")
)
