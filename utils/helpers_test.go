package utils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/andrewpaige1/revision-api/auth"
	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

func TestGetCaller(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if caller, ok := GetCaller(req); ok || caller.Role != auth.RoleUnknown {
		t.Errorf("expected no caller, got %+v", caller)
	}

	id := uint(7)
	claims := &validator.ValidatedClaims{
		CustomClaims: &auth.CustomClaims{Status: auth.RoleClient, Value: auth.Identity{ID: &id, Pseudo: "alice"}},
	}
	req = req.WithContext(context.WithValue(req.Context(), jwtmiddleware.ContextKey{}, claims))

	caller, ok := GetCaller(req)
	if !ok {
		t.Fatal("expected a caller")
	}
	if caller.Role != auth.RoleClient || caller.Pseudo != "alice" || caller.ID == nil || *caller.ID != 7 {
		t.Errorf("unexpected caller %+v", caller)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"abc", 0, true},
		{"-3", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseID(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
