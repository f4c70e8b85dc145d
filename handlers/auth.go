package handlers

import (
	"context"
	"net/http"

	"github.com/andrewpaige1/revision-api/apierr"
	"github.com/andrewpaige1/revision-api/auth"
	"github.com/andrewpaige1/revision-api/middleware"
	"github.com/andrewpaige1/revision-api/models"
	"github.com/andrewpaige1/revision-api/storage"
	"golang.org/x/sync/errgroup"
)

const msgEmptyCredentials = "Pseudo and/or password are empty"

// authenticate resolves credentials to a role. The non-admin and admin rows
// are fetched in parallel; the client row is checked first.
func (h *DBHandler) authenticate(ctx context.Context, creds models.Credentials) (auth.Role, auth.Identity, error) {
	var clientRow, adminRow *models.Client

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		row, err := h.Store.FindLoginCandidate(gctx, creds.Pseudo, false)
		if err != nil && !storage.IsNotFound(err) {
			return err
		}
		clientRow = row
		return nil
	})
	g.Go(func() error {
		row, err := h.Store.FindLoginCandidate(gctx, creds.Pseudo, true)
		if err != nil && !storage.IsNotFound(err) {
			return err
		}
		adminRow = row
		return nil
	})
	if err := g.Wait(); err != nil {
		return auth.RoleUnknown, auth.Identity{}, err
	}

	if clientRow != nil {
		ok, err := h.Passwords.Compare(creds.Password, clientRow.Password)
		if err != nil {
			return auth.RoleUnknown, auth.Identity{}, err
		}
		if ok {
			id := clientRow.ID
			return auth.RoleClient, auth.Identity{ID: &id, Pseudo: clientRow.Pseudo}, nil
		}
	}
	if adminRow != nil {
		ok, err := h.Passwords.Compare(creds.Password, adminRow.Password)
		if err != nil {
			return auth.RoleUnknown, auth.Identity{}, err
		}
		if ok {
			return auth.RoleAdmin, auth.Identity{Pseudo: adminRow.Pseudo}, nil
		}
	}
	return auth.RoleUnknown, auth.Identity{}, nil
}

// Login issues a token to any client or admin.
func (h *DBHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := middleware.ParseJSONBody(r, &creds); err != nil || creds.Pseudo == "" || creds.Password == "" {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}

	role, identity, err := h.authenticate(r.Context(), creds)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if role == auth.RoleUnknown {
		h.fail(w, r, apierr.NotFound(msgClientNotFound))
		return
	}

	token, err := h.Tokens.CreateToken(role, identity, auth.LoginTokenTTL)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.Log.Info("login", "pseudo", identity.Pseudo, "role", role)
	middleware.JSONResponse(w, http.StatusOK, token)
}

// AdminLogin issues a token only when the credentials match an admin.
func (h *DBHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := middleware.ParseJSONBody(r, &creds); err != nil || creds.Pseudo == "" || creds.Password == "" {
		h.fail(w, r, apierr.Validation(msgEmptyCredentials))
		return
	}

	role, identity, err := h.authenticate(r.Context(), creds)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if role != auth.RoleAdmin {
		h.fail(w, r, apierr.NotFound(msgClientNotFound))
		return
	}

	token, err := h.Tokens.CreateToken(role, identity, auth.AdminTokenTTL)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.Log.Info("admin login", "pseudo", identity.Pseudo)
	middleware.JSONResponse(w, http.StatusOK, token)
}
