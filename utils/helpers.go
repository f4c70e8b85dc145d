package utils

import (
	"net/http"
	"strconv"

	"github.com/andrewpaige1/revision-api/auth"
	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

// GetCaller returns the identity the bearer middleware put in the request
// context.
func GetCaller(r *http.Request) (auth.Caller, bool) {
	claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
	if !ok {
		return auth.Caller{Role: auth.RoleUnknown}, false
	}
	return auth.CallerFromClaims(claims), true
}

// ParseID parses a positive integer id from a path segment.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
