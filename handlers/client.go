package handlers

import (
	"net/http"

	"github.com/andrewpaige1/revision-api/apierr"
	"github.com/andrewpaige1/revision-api/middleware"
	"github.com/andrewpaige1/revision-api/models"
	"github.com/andrewpaige1/revision-api/storage"
	"github.com/andrewpaige1/revision-api/validation"
)

const (
	msgClientNotFound         = "Client not found"
	msgPseudoMailAlreadyUse   = "Pseudo or email already use"
	msgPseudoMailUsedByOthers = msgPseudoMailAlreadyUse + " by another client"
)

func (h *DBHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.Store.FindClientByPseudo(r.Context(), r.PathValue("pseudo"))
	if err != nil {
		h.fail(w, r, notFoundOr(err, msgClientNotFound))
		return
	}
	middleware.JSONResponse(w, http.StatusOK, client)
}

func (h *DBHandler) GetClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Store.ListClients(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, clients)
}

// RegisterClient is the public sign-up route.
func (h *DBHandler) RegisterClient(w http.ResponseWriter, r *http.Request) {
	var req models.ClientRegistration
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}
	if req.Password == nil || req.IsAdmin == nil || validation.ValidateStruct(req) != nil {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}

	taken, err := h.Store.PseudoOrEmailTaken(r.Context(), req.Pseudo, req.Email, 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if taken {
		h.fail(w, r, apierr.Conflict(msgPseudoMailAlreadyUse))
		return
	}

	hash, err := h.Passwords.Hash(*req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	client := models.Client{
		Pseudo:   req.Pseudo,
		Password: hash,
		Email:    req.Email,
		IsAdmin:  *req.IsAdmin,
	}
	if err := h.Store.CreateClient(r.Context(), &client); err != nil {
		h.fail(w, r, err)
		return
	}

	h.Log.Info("client registered", "client_id", client.ID, "pseudo", client.Pseudo)
	w.WriteHeader(http.StatusCreated)
}

// UpdateClient applies the supplied fields only.
func (h *DBHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req models.ClientUpdate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}
	if req.ID == nil || req.Empty() || validation.ValidateStruct(req) != nil {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}

	ctx := r.Context()
	if _, err := h.Store.FindClientByID(ctx, *req.ID); err != nil {
		h.fail(w, r, notFoundOr(err, msgClientNotFound))
		return
	}

	var pseudo, email string
	if req.Pseudo != nil {
		pseudo = *req.Pseudo
	}
	if req.Email != nil {
		email = *req.Email
	}
	if pseudo != "" || email != "" {
		taken, err := h.Store.PseudoOrEmailTaken(ctx, pseudo, email, *req.ID)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if taken {
			h.fail(w, r, apierr.Conflict(msgPseudoMailUsedByOthers))
			return
		}
	}

	fields := map[string]interface{}{}
	if req.Pseudo != nil {
		fields["pseudo"] = *req.Pseudo
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.IsAdmin != nil {
		fields["is_admin"] = *req.IsAdmin
	}
	if req.Password != nil {
		hash, err := h.Passwords.Hash(*req.Password)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		fields["password"] = hash
	}

	if err := h.Store.UpdateClient(ctx, *req.ID, fields); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteClient removes the client with all its decks, cards and sessions in
// one transaction.
func (h *DBHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	var req models.IDRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.ID == nil {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}

	ctx := r.Context()
	if _, err := h.Store.FindClientByID(ctx, *req.ID); err != nil {
		h.fail(w, r, notFoundOr(err, msgClientNotFound))
		return
	}

	if err := h.Store.Transaction(ctx, func(tx *storage.Store) error {
		return tx.DeleteClientCascade(ctx, *req.ID)
	}); err != nil {
		h.fail(w, r, err)
		return
	}

	h.Log.Info("client deleted", "client_id", *req.ID)
	w.WriteHeader(http.StatusNoContent)
}
