package middleware

import (
	"errors"
	"net/http"

	"github.com/andrewpaige1/revision-api/logger"
	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

const (
	msgMissingToken = "Missing token"
	msgInvalidToken = "Invalid token"
)

// Authenticator validates the bearer token and stores the validated claims
// under jwtmiddleware.ContextKey{}.
func Authenticator(v *validator.Validator, log *logger.Logger) func(http.Handler) http.Handler {
	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		if errors.Is(err, jwtmiddleware.ErrJWTMissing) {
			ErrorResponse(w, http.StatusUnauthorized, msgMissingToken)
			return
		}
		log.Debug("rejected token", "path", r.URL.Path, "error", err)
		ErrorResponse(w, http.StatusBadRequest, msgInvalidToken)
	}

	mw := jwtmiddleware.New(
		v.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)
	return mw.CheckJWT
}
