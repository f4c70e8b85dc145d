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
	msgCategoryNotFound    = "Revision category not found"
	msgCategoryIDNaN       = "Id's Revision category is NAN"
	msgCannotTouchCategory = `The "Not category" is the only one that cannot be deleted`
	msgNotEnoughCategories = "At least 2 categories are required"
)

const (
	minCategoriesKept      = 2
	maxCategoryName        = 99
	maxCategoryDescription = 500
)

// categoryValid: with a description only its length counts; without one
// the category count must be in (2, 5) and the name under 100 characters.
func categoryValid(count int64, name, description *string) bool {
	if description != nil {
		return validation.MaxLength(*description, maxCategoryDescription)
	}
	nameOK := name == nil || validation.MaxLength(*name, maxCategoryName)
	return count > 2 && count < 5 && nameOK
}

func (h *DBHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, apierr.Validation(msgCategoryIDNaN))
		return
	}

	category, err := h.Store.FindCategory(r.Context(), id)
	if err != nil {
		h.fail(w, r, notFoundOr(err, msgCategoryNotFound))
		return
	}
	middleware.JSONResponse(w, http.StatusOK, category)
}

func (h *DBHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, categories)
}

// CreateCategory inserts the category and renumbers every difficulty_order
// in the same transaction. Without difficulty_order the category goes last.
func (h *DBHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryCreate
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.CategoryName == nil {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}

	ctx := r.Context()
	var created models.RevisionCategory
	err := h.Store.Transaction(ctx, func(tx *storage.Store) error {
		count, err := tx.CountCategories(ctx)
		if err != nil {
			return err
		}
		if !categoryValid(count, req.CategoryName, req.Description) {
			return apierr.Validation(msgParameterWrong)
		}

		created = models.RevisionCategory{
			CategoryName:    *req.CategoryName,
			DifficultyOrder: int(count),
			Description:     req.Description,
		}
		if req.DifficultyOrder != nil {
			created.DifficultyOrder = *req.DifficultyOrder
		}
		if err := tx.CreateCategory(ctx, &created); err != nil {
			return err
		}
		return tx.ReorderCategories(ctx, created.ID)
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.Log.Info("category created", "category_id", created.ID)
	w.WriteHeader(http.StatusCreated)
}

// UpdateCategory applies the supplied fields and renumbers the orders, the
// updated category winning ties.
func (h *DBHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryUpdate
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.CategoryID == nil {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}
	if *req.CategoryID == models.DefaultCategoryID {
		h.fail(w, r, apierr.Validation(msgCannotTouchCategory))
		return
	}

	ctx := r.Context()
	err := h.Store.Transaction(ctx, func(tx *storage.Store) error {
		count, err := tx.CountCategories(ctx)
		if err != nil {
			return err
		}
		if !categoryValid(count, req.CategoryName, req.Description) {
			return apierr.Validation(msgParameterWrong)
		}
		if _, err := tx.FindCategory(ctx, *req.CategoryID); err != nil {
			return notFoundOr(err, msgCategoryNotFound)
		}

		fields := map[string]interface{}{}
		if req.CategoryName != nil {
			fields["category_name"] = *req.CategoryName
		}
		if req.DifficultyOrder != nil {
			fields["difficulty_order"] = *req.DifficultyOrder
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}
		if len(fields) > 0 {
			if err := tx.UpdateCategory(ctx, *req.CategoryID, fields); err != nil {
				return err
			}
		}
		return tx.ReorderCategories(ctx, *req.CategoryID)
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteCategory moves the category's cards to the default category before
// deleting it, then renumbers the remaining orders.
func (h *DBHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	var req models.IDRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.ID == nil {
		h.fail(w, r, apierr.Validation(msgParameterWrong))
		return
	}

	ctx := r.Context()
	count, err := h.Store.CountCategories(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if count <= minCategoriesKept {
		h.fail(w, r, apierr.Validation(msgNotEnoughCategories))
		return
	}
	if *req.ID == models.DefaultCategoryID {
		h.fail(w, r, apierr.Validation(msgCannotTouchCategory))
		return
	}
	if _, err := h.Store.FindCategory(ctx, *req.ID); err != nil {
		h.fail(w, r, notFoundOr(err, msgCategoryNotFound))
		return
	}

	if err := h.Store.Transaction(ctx, func(tx *storage.Store) error {
		return tx.DeleteCategoryReassigning(ctx, *req.ID)
	}); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.Store.Transaction(ctx, func(tx *storage.Store) error {
		return tx.ReorderCategories(ctx, 0)
	}); err != nil {
		h.fail(w, r, err)
		return
	}

	h.Log.Info("category deleted", "category_id", *req.ID)
	w.WriteHeader(http.StatusNoContent)
}
