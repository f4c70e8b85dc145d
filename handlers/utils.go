package handlers

import (
	"net/http"

	"github.com/andrewpaige1/revision-api/apierr"
	"github.com/andrewpaige1/revision-api/auth"
	"github.com/andrewpaige1/revision-api/logger"
	"github.com/andrewpaige1/revision-api/middleware"
	"github.com/andrewpaige1/revision-api/storage"
)

const msgParameterWrong = "Parameter(s) wrong(s)"

type DBHandler struct {
	Store     *storage.Store
	Log       *logger.Logger
	Tokens    *auth.TokenIssuer
	Passwords auth.PasswordHasher
}

// fail reports typed errors as {"error": message}. Anything else is logged
// and answered with a bare 500.
func (h *DBHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if apiErr, ok := apierr.As(err); ok && apiErr.Kind != apierr.KindInternal {
		middleware.ErrorResponse(w, apiErr.Status(), apiErr.Message)
		return
	}
	h.Log.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetRequestID(r.Context()),
		"error", err,
	)
	w.WriteHeader(http.StatusInternalServerError)
}

// notFoundOr maps a missing row to a 404 with msg and keeps other errors.
func notFoundOr(err error, msg string) error {
	if storage.IsNotFound(err) {
		return apierr.NotFound(msg)
	}
	return err
}
