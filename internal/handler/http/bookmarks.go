package http

import (
	"net/http"

	"github.com/Theworld7/VisiFind/internal/app"
	"github.com/Theworld7/VisiFind/internal/utils"
	"github.com/Theworld7/VisiFind/models"
)

type createdResponse struct {
	ID int64 `json:"id"`
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.BookmarkService.Bookmarks(), http.StatusOK)
}

func (h *Handler) createBookmark(w http.ResponseWriter, r *http.Request) {
	var bookmark models.Bookmark
	if err := decodeJSON(w, r, &bookmark); err != nil {
		h.writeError(w, r, "*Handler.createBookmark", app.MsgInvalidBookmark, err)
		return
	}

	id, err := h.services.BookmarkService.Add(r.Context(), bookmark)
	if err != nil {
		h.writeError(w, r, "*Handler.createBookmark", app.MsgErrorCreatingBookmark, err)
		return
	}

	utils.WriteJSON(w, createdResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) updateBookmark(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateBookmark", app.MsgInvalidBookmarkID, err)
		return
	}

	var bookmark models.Bookmark
	if err = decodeJSON(w, r, &bookmark); err != nil {
		h.writeError(w, r, "*Handler.updateBookmark", app.MsgInvalidBookmark, err)
		return
	}

	if err = h.services.BookmarkService.Update(r.Context(), id, bookmark); err != nil {
		h.writeError(w, r, "*Handler.updateBookmark", app.MsgErrorUpdatingBookmark, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, "*Handler.deleteBookmark", app.MsgInvalidBookmarkID, err)
		return
	}

	if err = h.services.BookmarkService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, "*Handler.deleteBookmark", app.MsgErrorDeletingBookmark, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// reorderBookmarks receives the complete list in its new display order.
func (h *Handler) reorderBookmarks(w http.ResponseWriter, r *http.Request) {
	var bookmarks []models.Bookmark
	if err := decodeJSON(w, r, &bookmarks); err != nil {
		h.writeError(w, r, "*Handler.reorderBookmarks", app.MsgInvalidBookmarkList, err)
		return
	}

	if err := h.services.BookmarkService.Reorder(r.Context(), bookmarks); err != nil {
		h.writeError(w, r, "*Handler.reorderBookmarks", app.MsgErrorReorderingBookmarks, err)
		return
	}

	utils.WriteJSON(w, h.services.BookmarkService.Bookmarks(), http.StatusOK)
}
