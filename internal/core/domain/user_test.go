package domain

import (
	"errors"
	"testing"
)

func TestRequireRole_CaseInsensitive(t *testing.T) {
	p := &Principal{ID: "u1", Email: "a@example.com", Role: "Admin"}
	if err := p.RequireRole(RoleAdmin); err != nil {
		t.Fatalf("role \"Admin\" should satisfy admin requirement: %v", err)
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	p := &Principal{ID: "u1", Email: "a@example.com", Role: RoleUser}
	if err := p.RequireRole(RoleAdmin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_NilPrincipal(t *testing.T) {
	var p *Principal
	if err := p.RequireRole(RoleAdmin); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential for nil principal, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	if ParseRole("  ADMIN ") != RoleAdmin {
		t.Fatalf("expected normalized admin role")
	}
	if ParseRole("User") != RoleUser {
		t.Fatalf("expected normalized user role")
	}
}
