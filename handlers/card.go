package handlers

import (
	"net/http"

	"github.com/andrewpaige1/revision-api/apierr"
	"github.com/andrewpaige1/revision-api/middleware"
	"github.com/andrewpaige1/revision-api/models"
	"github.com/andrewpaige1/revision-api/storage"
	"github.com/andrewpaige1/revision-api/utils"
	"github.com/andrewpaige1/revision-api/validation"
)

const (
	msgCardParameterWrong = "Wrong Parameter(s)"
	msgCardNotFound       = "Card not found"
	msgCardDeckIDNaN      = "Id's deck is NAN"
	msgCardIDNaN          = "Id's card is NAN"
)

func (h *DBHandler) GetCardsOfDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := utils.ParseID(r.PathValue("deck_id"))
	if err != nil {
		h.fail(w, r, apierr.Validation(msgCardDeckIDNaN))
		return
	}

	ctx := r.Context()
	if _, err := h.Store.FindDeck(ctx, deckID); err != nil {
		h.fail(w, r, notFoundOr(err, msgDeckNotFound))
		return
	}

	cards, err := h.Store.ListCardsOfDeck(ctx, deckID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resp := make([]models.CardInDeck, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, models.CardInDeck{
			ID:         card.ID,
			CategoryID: card.CategoryID,
			FrontCard:  card.FrontCard,
			BackCard:   card.BackCard,
		})
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetCard returns the card with its deck resolved into the deck_id field.
func (h *DBHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, apierr.Validation(msgCardIDNaN))
		return
	}

	ctx := r.Context()
	card, err := h.Store.FindCard(ctx, id)
	if err != nil {
		h.fail(w, r, notFoundOr(err, msgCardNotFound))
		return
	}
	deck, err := h.Store.FindDeck(ctx, card.DeckID)
	if err != nil && !storage.IsNotFound(err) {
		h.fail(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CardDetail{
		ID:         card.ID,
		DeckID:     deck,
		CategoryID: card.CategoryID,
		FrontCard:  card.FrontCard,
		BackCard:   card.BackCard,
	})
}

// categoryExists treats a missing category as invalid input.
func (h *DBHandler) categoryExists(r *http.Request, id uint) error {
	if _, err := h.Store.FindCategory(r.Context(), id); err != nil {
		if storage.IsNotFound(err) {
			return apierr.Validation(msgCardParameterWrong)
		}
		return err
	}
	return nil
}

func (h *DBHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req models.CardCreate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.fail(w, r, apierr.Validation(msgCardParameterWrong))
		return
	}
	if req.DeckID == nil {
		h.fail(w, r, apierr.NotFound(msgDeckNotFound))
		return
	}

	ctx := r.Context()
	if _, err := h.Store.FindDeck(ctx, *req.DeckID); err != nil {
		h.fail(w, r, notFoundOr(err, msgDeckNotFound))
		return
	}
	if req.CategoryID == nil || req.FrontCard == nil || validation.ValidateStruct(req) != nil {
		h.fail(w, r, apierr.Validation(msgCardParameterWrong))
		return
	}
	if err := h.categoryExists(r, *req.CategoryID); err != nil {
		h.fail(w, r, err)
		return
	}

	card := models.Card{
		DeckID:     *req.DeckID,
		CategoryID: *req.CategoryID,
		FrontCard:  *req.FrontCard,
		BackCard:   req.BackCard,
	}
	if err := h.Store.CreateCard(ctx, &card); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// UpdateCard applies the supplied fields only. It answers 201, not 204.
func (h *DBHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	var req models.CardUpdate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.fail(w, r, apierr.Validation(msgCardParameterWrong))
		return
	}
	if req.ID == nil {
		h.fail(w, r, apierr.NotFound(msgCardNotFound))
		return
	}

	ctx := r.Context()
	if _, err := h.Store.FindCard(ctx, *req.ID); err != nil {
		h.fail(w, r, notFoundOr(err, msgCardNotFound))
		return
	}
	if req.Empty() || validation.ValidateStruct(req) != nil {
		h.fail(w, r, apierr.Validation(msgCardParameterWrong))
		return
	}

	fields := map[string]interface{}{}
	if req.CategoryID != nil {
		if err := h.categoryExists(r, *req.CategoryID); err != nil {
			h.fail(w, r, err)
			return
		}
		fields["category_id"] = *req.CategoryID
	}
	if req.FrontCard != nil {
		fields["front_card"] = *req.FrontCard
	}
	if req.BackCard != nil {
		fields["back_card"] = *req.BackCard
	}

	if err := h.Store.UpdateCard(ctx, *req.ID, fields); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *DBHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	var req models.IDRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.ID == nil {
		h.fail(w, r, apierr.NotFound(msgCardNotFound))
		return
	}

	ctx := r.Context()
	if _, err := h.Store.FindCard(ctx, *req.ID); err != nil {
		h.fail(w, r, notFoundOr(err, msgCardNotFound))
		return
	}
	if err := h.Store.DeleteCard(ctx, *req.ID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
