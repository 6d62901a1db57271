package http

import (
	"errors"
	"net/http"

	"github.com/Theworld7/VisiFind/internal/adapter"
	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/search"
	"github.com/Theworld7/VisiFind/internal/service"
	"github.com/Theworld7/VisiFind/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidID:        http.StatusBadRequest,
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrMissingDateQuery: http.StatusBadRequest,
	ErrRangeTooLong:     http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrMalformedImportDocument: http.StatusBadRequest,
	service.ErrWallpaperUnavailable:    http.StatusServiceUnavailable,
	service.ErrExportFailed:            http.StatusInternalServerError,

	search.ErrEmptyQuery:    http.StatusBadRequest,
	search.ErrUnknownEngine: http.StatusBadRequest,

	adapter.ErrNoWallpaper:      http.StatusBadGateway,
	adapter.ErrUnexpectedStatus: http.StatusBadGateway,
	adapter.ErrDecodingResponse: http.StatusBadGateway,

	store.ErrBookmarkNotFound: http.StatusNotFound,
	store.ErrFoodNotFound:     http.StatusNotFound,
	store.ErrRecordNotFound:   http.StatusNotFound,

	store.ErrStorageUnavailable: http.StatusServiceUnavailable,
	store.ErrTransactionFailed:  http.StatusInternalServerError,
}

// statusFromError picks the status of the first mapped error found in the
// chain of err. Request input errors are checked before service errors so a
// wrapped validation failure never reads as a storage failure.
func statusFromError(err error) int {
	for _, target := range []error{
		ErrInvalidID, ErrInvalidJSON, ErrMissingDateQuery, ErrRangeTooLong,
		service.ErrInvalidDataProvided, service.ErrMalformedImportDocument,
		search.ErrEmptyQuery, search.ErrUnknownEngine,
	} {
		if errors.Is(err, target) {
			return errorStatusMap[target]
		}
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err under funcName and replies with its mapped status.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName, msg string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	log.Err(err).Str("func", funcName).Int("status", status).Msg(msg)

	if status >= http.StatusInternalServerError {
		http.Error(w, msg, status)
		return
	}
	http.Error(w, msg+": "+err.Error(), status)
}
