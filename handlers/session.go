package handlers

import (
	"net/http"

	"github.com/andrewpaige1/revision-api/apierr"
	"github.com/andrewpaige1/revision-api/auth"
	"github.com/andrewpaige1/revision-api/middleware"
	"github.com/andrewpaige1/revision-api/models"
	"github.com/andrewpaige1/revision-api/utils"
)

const (
	msgSessionNotFound    = "Session not found"
	msgSessionIDNaN       = "Id's session is NAN"
	msgSessionDeckMissing = "Deck doesn't exist"
	msgSessionExists      = "There is already a session associated with this deck"
	msgNotOwnerAccount    = "You can't perform this action if it's not your account or you're not administrator"
)

// deckAlreadyHasSession returns true when NO session uses deckID.
func deckAlreadyHasSession(sessions []models.Session, deckID uint) bool {
	for _, session := range sessions {
		if session.DeckID == deckID {
			return false
		}
	}
	return true
}

// checkDeckOwner resolves the deck's owner and compares it to the caller.
func (h *DBHandler) checkDeckOwner(r *http.Request, deck *models.Deck) error {
	owner, err := h.Store.FindClientByID(r.Context(), deck.ClientID)
	if err != nil {
		return notFoundOr(err, msgUserNotFound)
	}
	caller, _ := utils.GetCaller(r)
	if !auth.OwnsDeck(caller, owner.Pseudo) {
		return apierr.Forbidden(msgNotOwnerAccount)
	}
	return nil
}

func (h *DBHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, apierr.Validation(msgSessionIDNaN))
		return
	}

	session, err := h.Store.FindSession(r.Context(), id)
	if err != nil {
		h.fail(w, r, notFoundOr(err, msgSessionNotFound))
		return
	}
	middleware.JSONResponse(w, http.StatusOK, session)
}

// CreateSession is only allowed to the owner of the deck.
func (h *DBHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionCreate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}
	if req.DeckID == nil {
		h.fail(w, r, apierr.NotFound(msgSessionDeckMissing))
		return
	}

	ctx := r.Context()
	deck, err := h.Store.FindDeck(ctx, *req.DeckID)
	if err != nil {
		h.fail(w, r, notFoundOr(err, msgSessionDeckMissing))
		return
	}
	if err := h.checkDeckOwner(r, deck); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.Completed == nil {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}

	sessions, err := h.Store.ListSessions(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !deckAlreadyHasSession(sessions, deck.ID) {
		h.fail(w, r, apierr.Conflict(msgSessionExists))
		return
	}

	session := models.Session{DeckID: deck.ID, Completed: *req.Completed}
	if err := h.Store.CreateSession(ctx, &session); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *DBHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionUpdate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}
	if req.ID == nil {
		h.fail(w, r, apierr.NotFound(msgSessionNotFound))
		return
	}

	ctx := r.Context()
	session, err := h.Store.FindSession(ctx, *req.ID)
	if err != nil {
		h.fail(w, r, notFoundOr(err, msgSessionNotFound))
		return
	}
	deck, err := h.Store.FindDeck(ctx, session.DeckID)
	if err != nil {
		h.fail(w, r, notFoundOr(err, msgSessionDeckMissing))
		return
	}
	if err := h.checkDeckOwner(r, deck); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.Completed == nil {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}

	if err := h.Store.SetSessionCompleted(ctx, session.ID, *req.Completed); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DBHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	var req models.IDRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.ID == nil {
		h.fail(w, r, apierr.NotFound(msgSessionNotFound))
		return
	}

	ctx := r.Context()
	if _, err := h.Store.FindSession(ctx, *req.ID); err != nil {
		h.fail(w, r, notFoundOr(err, msgSessionNotFound))
		return
	}
	if err := h.Store.DeleteSession(ctx, *req.ID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
