package http

import (
	"net/http"

	"github.com/Theworld7/VisiFind/internal/app"
	"github.com/Theworld7/VisiFind/internal/search"
	"github.com/Theworld7/VisiFind/internal/utils"
)

type searchEngineBody struct {
	Engine  search.Engine   `json:"engine"`
	Engines []search.Engine `json:"engines,omitempty"`
}

type searchURLResponse struct {
	Engine search.Engine `json:"engine"`
	URL    string        `json:"url"`
}

func (h *Handler) getSearchEngine(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, searchEngineBody{
		Engine:  h.services.AppSettingsService.SearchEngine(),
		Engines: search.Engines(),
	}, http.StatusOK)
}

func (h *Handler) putSearchEngine(w http.ResponseWriter, r *http.Request) {
	var body searchEngineBody
	if err := decodeJSON(w, r, &body); err != nil {
		h.writeError(w, r, "*Handler.putSearchEngine", app.MsgInvalidSearchEngine, err)
		return
	}

	if err := h.services.AppSettingsService.SetSearchEngine(r.Context(), body.Engine); err != nil {
		h.writeError(w, r, "*Handler.putSearchEngine", app.MsgErrorSavingSearchEngine, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// searchURL resolves ?q against the selected engine.
func (h *Handler) searchURL(w http.ResponseWriter, r *http.Request) {
	svc := h.services.AppSettingsService

	target, err := svc.SearchURL(r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, "*Handler.searchURL", app.MsgErrorBuildingSearchURL, err)
		return
	}

	utils.WriteJSON(w, searchURLResponse{Engine: svc.SearchEngine(), URL: target}, http.StatusOK)
}
