package middleware

import (
	"net/http"

	"github.com/andrewpaige1/revision-api/auth"
	"github.com/andrewpaige1/revision-api/utils"
)

const msgNotYourAccount = "It's not your account"

func require(rule func(auth.Caller) bool, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := utils.GetCaller(r)
		if !ok || !rule(caller) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return require(auth.MustBeAdmin, next)
}

func RequireClientOrAdmin(next http.HandlerFunc) http.HandlerFunc {
	return require(auth.MustBeClientOrAdmin, next)
}

// RequireMyAccountOrAdmin compares the caller with the {pseudo} path value.
func RequireMyAccountOrAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := utils.GetCaller(r)
		if !ok || !auth.IsMyAccountOrAdmin(caller, r.PathValue("pseudo")) {
			ErrorResponse(w, http.StatusForbidden, msgNotYourAccount)
			return
		}
		next(w, r)
	}
}
