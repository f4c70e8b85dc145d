package auth

import (
	"context"
	"testing"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "revision-api-test"
	testAudience = "revision-clients"
)

func newTestValidator(t *testing.T) *validator.Validator {
	t.Helper()
	v, err := NewValidator(testSecret, testIssuer, testAudience)
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	return v
}

func TestCreateTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, testIssuer, testAudience)
	v := newTestValidator(t)

	id := uint(7)
	tests := []struct {
		name     string
		role     Role
		identity Identity
	}{
		{"client", RoleClient, Identity{ID: &id, Pseudo: "alice"}},
		{"admin", RoleAdmin, Identity{Pseudo: "root"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, err := issuer.CreateToken(tc.role, tc.identity, LoginTokenTTL)
			if err != nil {
				t.Fatalf("CreateToken: %v", err)
			}

			raw, err := v.ValidateToken(context.Background(), token)
			if err != nil {
				t.Fatalf("ValidateToken: %v", err)
			}
			claims := raw.(*validator.ValidatedClaims)
			if claims.RegisteredClaims.Subject != tc.identity.Pseudo {
				t.Errorf("expected subject %q, got %q", tc.identity.Pseudo, claims.RegisteredClaims.Subject)
			}
			if claims.RegisteredClaims.ID == "" {
				t.Error("expected a token id")
			}

			caller := CallerFromClaims(claims)
			if caller.Role != tc.role || caller.Pseudo != tc.identity.Pseudo {
				t.Errorf("unexpected caller %+v", caller)
			}
			if (caller.ID == nil) != (tc.identity.ID == nil) {
				t.Errorf("id presence mismatch: %+v", caller)
			}
			if caller.ID != nil && *caller.ID != *tc.identity.ID {
				t.Errorf("expected id %d, got %d", *tc.identity.ID, *caller.ID)
			}
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, testIssuer, testAudience)
	v := newTestValidator(t)

	issuedAt := time.Now()
	issuer.now = func() time.Time { return issuedAt.Add(-3 * time.Hour) }

	adminToken, err := issuer.CreateToken(RoleAdmin, Identity{Pseudo: "root"}, AdminTokenTTL)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := v.ValidateToken(context.Background(), adminToken); err == nil {
		t.Error("a 2h token issued 3h ago should be expired")
	}

	loginToken, err := issuer.CreateToken(RoleClient, Identity{Pseudo: "alice"}, LoginTokenTTL)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := v.ValidateToken(context.Background(), loginToken); err != nil {
		t.Errorf("a 4h token issued 3h ago should still be valid: %v", err)
	}
}

func TestValidatorRejects(t *testing.T) {
	v := newTestValidator(t)

	otherSecret, _ := NewTokenIssuer("other-secret", testIssuer, testAudience).CreateToken(RoleAdmin, Identity{Pseudo: "root"}, time.Hour)
	otherAudience, _ := NewTokenIssuer(testSecret, testIssuer, "someone-else").CreateToken(RoleAdmin, Identity{Pseudo: "root"}, time.Hour)
	unknownRole, _ := NewTokenIssuer(testSecret, testIssuer, testAudience).CreateToken(RoleUnknown, Identity{Pseudo: "root"}, time.Hour)

	tests := map[string]string{
		"garbage":        "not-a-token",
		"wrong secret":   otherSecret,
		"wrong audience": otherAudience,
		"unknown role":   unknownRole,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := v.ValidateToken(context.Background(), token); err == nil {
				t.Error("expected validation to fail")
			}
		})
	}
}

func TestCreateTokenWithoutSecret(t *testing.T) {
	if _, err := NewTokenIssuer("", testIssuer, testAudience).CreateToken(RoleClient, Identity{Pseudo: "alice"}, time.Hour); err == nil {
		t.Error("expected an error without a secret")
	}
	if _, err := NewValidator("", testIssuer, testAudience); err == nil {
		t.Error("expected an error without a secret")
	}
}

func TestCallerFromNilClaims(t *testing.T) {
	if got := CallerFromClaims(nil); got.Role != RoleUnknown {
		t.Errorf("expected unknown role, got %q", got.Role)
	}
}
