package handlers

import (
	"net/http"

	"github.com/andrewpaige1/revision-api/apierr"
	"github.com/andrewpaige1/revision-api/auth"
	"github.com/andrewpaige1/revision-api/middleware"
	"github.com/andrewpaige1/revision-api/models"
	"github.com/andrewpaige1/revision-api/storage"
	"github.com/andrewpaige1/revision-api/utils"
	"github.com/andrewpaige1/revision-api/validation"
)

const (
	msgDeckNotFound    = "Deck not found"
	msgDeckNameInvalid = "Deck name invalid (max 100 characters)"
	msgDeckIDNaN       = "Id's is NAN"
	msgUserNotFound    = "User not found"
)

// GetDeck shows the owner's contact to admins only.
func (h *DBHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, apierr.Validation(msgDeckIDNaN))
		return
	}

	ctx := r.Context()
	deck, err := h.Store.FindDeck(ctx, id)
	if err != nil {
		h.fail(w, r, notFoundOr(err, msgDeckNotFound))
		return
	}
	owner, err := h.Store.FindClientByID(ctx, deck.ClientID)
	if err != nil {
		h.fail(w, r, notFoundOr(err, msgUserNotFound))
		return
	}

	caller, _ := utils.GetCaller(r)
	if caller.Role == auth.RoleAdmin {
		middleware.JSONResponse(w, http.StatusOK, models.DeckWithOwner{
			ID: deck.ID,
			Client: models.ClientContact{
				Pseudo:  owner.Pseudo,
				Email:   owner.Email,
				IsAdmin: owner.IsAdmin,
			},
			DeckName: deck.DeckName,
		})
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.DeckSummary{ID: deck.ID, DeckName: deck.DeckName})
}

func (h *DBHandler) GetDecksOfClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	client, err := h.Store.FindClientByPseudo(ctx, r.PathValue("pseudo"))
	if err != nil {
		h.fail(w, r, notFoundOr(err, msgUserNotFound))
		return
	}

	decks, err := h.Store.ListDecksOfClient(ctx, client.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	summaries := make([]models.DeckSummary, 0, len(decks))
	for _, deck := range decks {
		summaries = append(summaries, models.DeckSummary{ID: deck.ID, DeckName: deck.DeckName})
	}
	middleware.JSONResponse(w, http.StatusOK, summaries)
}

func (h *DBHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req models.DeckCreate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.fail(w, r, apierr.Validation(msgDeckNameInvalid))
		return
	}

	ctx := r.Context()
	client, err := h.Store.FindClientByPseudo(ctx, req.Pseudo)
	if err != nil {
		h.fail(w, r, notFoundOr(err, msgUserNotFound))
		return
	}
	if validation.ValidateStruct(req) != nil {
		h.fail(w, r, apierr.Validation(msgDeckNameInvalid))
		return
	}

	deck := models.Deck{ClientID: client.ID, DeckName: req.DeckName}
	if err := h.Store.CreateDeck(ctx, &deck); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// UpdateDeck renames a deck. It answers 201, not 204.
func (h *DBHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	var req models.DeckRename
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.fail(w, r, apierr.Validation(msgDeckNameInvalid))
		return
	}
	if req.ID == nil {
		h.fail(w, r, apierr.NotFound(msgDeckNotFound))
		return
	}

	ctx := r.Context()
	deck, err := h.Store.FindDeck(ctx, *req.ID)
	if err != nil {
		h.fail(w, r, notFoundOr(err, msgDeckNotFound))
		return
	}
	if _, err := h.Store.FindClientByID(ctx, deck.ClientID); err != nil {
		if storage.IsNotFound(err) {
			err = apierr.Validation(msgDeckNameInvalid)
		}
		h.fail(w, r, err)
		return
	}
	if validation.ValidateStruct(req) != nil {
		h.fail(w, r, apierr.Validation(msgDeckNameInvalid))
		return
	}

	if err := h.Store.RenameDeck(ctx, deck.ID, req.DeckName); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *DBHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	var req models.IDRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.ID == nil {
		h.fail(w, r, apierr.NotFound(msgDeckNotFound))
		return
	}

	ctx := r.Context()
	if _, err := h.Store.FindDeck(ctx, *req.ID); err != nil {
		h.fail(w, r, notFoundOr(err, msgDeckNotFound))
		return
	}

	if err := h.Store.Transaction(ctx, func(tx *storage.Store) error {
		return tx.DeleteDeckCascade(ctx, *req.ID)
	}); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
