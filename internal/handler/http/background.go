package http

import (
	"net/http"

	"github.com/Theworld7/VisiFind/internal/app"
	"github.com/Theworld7/VisiFind/internal/utils"
	"github.com/Theworld7/VisiFind/models"
)

type backgroundResponse struct {
	Settings     models.BackgroundSettings `json:"settings"`
	EffectiveURL string                    `json:"effectiveUrl"`
	Style        models.BackgroundStyle    `json:"style"`
}

func (h *Handler) backgroundState() backgroundResponse {
	svc := h.services.BackgroundService
	return backgroundResponse{
		Settings:     svc.Settings(),
		EffectiveURL: svc.EffectiveURL(),
		Style:        svc.Style(),
	}
}

func (h *Handler) getBackground(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backgroundState(), http.StatusOK)
}

func (h *Handler) patchBackground(w http.ResponseWriter, r *http.Request) {
	var patch models.BackgroundPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		h.writeError(w, r, "*Handler.patchBackground", app.MsgInvalidBackgroundSettings, err)
		return
	}

	if err := h.services.BackgroundService.Update(r.Context(), patch); err != nil {
		h.writeError(w, r, "*Handler.patchBackground", app.MsgErrorUpdatingBackgroundSettings, err)
		return
	}

	utils.WriteJSON(w, h.backgroundState(), http.StatusOK)
}

func (h *Handler) getBackgroundStyle(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.BackgroundService.Style(), http.StatusOK)
}

func (h *Handler) refreshBingWallpaper(w http.ResponseWriter, r *http.Request) {
	if _, err := h.services.BackgroundService.RefreshBingWallpaper(r.Context()); err != nil {
		h.writeError(w, r, "*Handler.refreshBingWallpaper", app.MsgErrorFetchingBingWallpaper, err)
		return
	}

	utils.WriteJSON(w, h.backgroundState(), http.StatusOK)
}
