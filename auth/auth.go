package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Token lifetimes. The admin-only login issues shorter tokens than the
// general login.
const (
	LoginTokenTTL = 4 * time.Hour
	AdminTokenTTL = 2 * time.Hour
)

// Identity is the "value" claim of a token. Admin tokens carry no id.
type Identity struct {
	ID     *uint  `json:"id,omitempty"`
	Pseudo string `json:"pseudo"`
}

// CustomClaims are the application claims read back by the validator.
type CustomClaims struct {
	Status Role     `json:"status"`
	Value  Identity `json:"value"`
}

func (c *CustomClaims) Validate(ctx context.Context) error {
	if c.Status != RoleAdmin && c.Status != RoleClient {
		return fmt.Errorf("unexpected status %q", c.Status)
	}
	if c.Value.Pseudo == "" {
		return errors.New("missing pseudo")
	}
	return nil
}

type tokenClaims struct {
	Status Role     `json:"status"`
	Value  Identity `json:"value"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

func NewTokenIssuer(secret, issuer, audience string) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}
}

// CreateToken signs an HS256 token for the given role and identity.
func (ti *TokenIssuer) CreateToken(role Role, identity Identity, ttl time.Duration) (string, error) {
	if len(ti.secret) == 0 {
		return "", errors.New("auth: JWT secret key not set")
	}

	jti, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("auth: generate token id: %w", err)
	}

	now := ti.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Status: role,
		Value:  identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ti.issuer,
			Subject:   identity.Pseudo,
			Audience:  jwt.ClaimStrings{ti.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        jti,
		},
	})

	tokenString, err := token.SignedString(ti.secret)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// NewValidator builds the validator used by the bearer middleware. It checks
// the signature, issuer, audience and expiry, then the custom claims.
func NewValidator(secret, issuer, audience string) (*validator.Validator, error) {
	if secret == "" {
		return nil, errors.New("auth: JWT secret key not set")
	}
	keyFunc := func(ctx context.Context) (interface{}, error) {
		return []byte(secret), nil
	}
	return validator.New(
		keyFunc,
		validator.HS256,
		issuer,
		[]string{audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &CustomClaims{}
		}),
		validator.WithAllowedClockSkew(30*time.Second),
	)
}

// CallerFromClaims turns validated claims into a Caller.
func CallerFromClaims(claims *validator.ValidatedClaims) Caller {
	if claims == nil {
		return Caller{Role: RoleUnknown}
	}
	custom, ok := claims.CustomClaims.(*CustomClaims)
	if !ok || custom == nil {
		return Caller{Role: RoleUnknown}
	}
	return Caller{
		Role:   custom.Status,
		ID:     custom.Value.ID,
		Pseudo: custom.Value.Pseudo,
	}
}
