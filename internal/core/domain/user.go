package domain

import (
	"strings"
	"time"
)

// Role is the closed set of account roles. Stored lower-case; normalize
// external input with ParseRole before comparing.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole lower-cases a raw role string so the comparison happens once at
// the edge instead of everywhere a role is checked.
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// User models a storefront account.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	FirstName    string    `json:"firstName" bson:"first_name"`
	LastName     string    `json:"lastName" bson:"last_name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Role         Role      `json:"role" bson:"role"`
	Status       string    `json:"status,omitempty" bson:"status,omitempty"`
	Wishlist     []string  `json:"-" bson:"wishlist,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

// Principal is the authenticated identity for a single request. It is always
// built from the user record as stored right now, never from token claims, so
// a role change applies on the very next request even while the old token is
// still within its lifetime.
type Principal struct {
	ID    string
	Email string
	Role  Role
}

// RequireRole fails with ErrForbidden unless the principal holds the given
// role. A nil principal means the auth stage never ran.
func (p *Principal) RequireRole(role Role) error {
	if p == nil {
		return ErrMissingCredential
	}
	if ParseRole(string(p.Role)) != ParseRole(string(role)) {
		return ErrForbidden
	}
	return nil
}
