package http

import (
	"net/http"

	"github.com/Theworld7/VisiFind/internal/app"
	"github.com/Theworld7/VisiFind/internal/utils"
	"github.com/Theworld7/VisiFind/models"
)

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.FoodLibraryService.Foods(), http.StatusOK)
}

func (h *Handler) createFood(w http.ResponseWriter, r *http.Request) {
	var food models.FoodItem
	if err := decodeJSON(w, r, &food); err != nil {
		h.writeError(w, r, "*Handler.createFood", app.MsgInvalidFoodItem, err)
		return
	}

	id, err := h.services.FoodLibraryService.Add(r.Context(), food)
	if err != nil {
		h.writeError(w, r, "*Handler.createFood", app.MsgErrorCreatingFoodItem, err)
		return
	}

	utils.WriteJSON(w, createdResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) updateFood(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateFood", app.MsgInvalidFoodID, err)
		return
	}

	var food models.FoodItem
	if err = decodeJSON(w, r, &food); err != nil {
		h.writeError(w, r, "*Handler.updateFood", app.MsgInvalidFoodItem, err)
		return
	}

	if err = h.services.FoodLibraryService.Update(r.Context(), id, food); err != nil {
		h.writeError(w, r, "*Handler.updateFood", app.MsgErrorUpdatingFoodItem, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteFood(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, "*Handler.deleteFood", app.MsgInvalidFoodID, err)
		return
	}

	if err = h.services.FoodLibraryService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, "*Handler.deleteFood", app.MsgErrorDeletingFoodItem, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
