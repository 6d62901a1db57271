package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Theworld7/VisiFind/internal/app"
	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/utils"
)

// maxBackupSize bounds an uploaded backup document.
const maxBackupSize = 32 << 20

// downloadBackup streams a fresh version 2 snapshot as an attachment. The
// snapshot is encoded in memory first so a failed export never produces a
// truncated download.
func (h *Handler) downloadBackup(w http.ResponseWriter, r *http.Request) {
	svc := h.services.BackupService

	h.intakeMu.Lock()
	snapshot, err := svc.Export(r.Context())
	h.intakeMu.Unlock()
	if err != nil {
		h.writeError(w, r, "*Handler.downloadBackup", app.MsgErrorExportingBackup, err)
		return
	}

	var buf bytes.Buffer
	if err = svc.Encode(&buf, snapshot); err != nil {
		h.writeError(w, r, "*Handler.downloadBackup", app.MsgErrorEncodingBackup, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", svc.FileName(time.Now())))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// uploadBackup imports the raw request body. Per-record failures do not fail
// the request, they are listed in the returned report.
func (h *Handler) uploadBackup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBackupSize))
	if err != nil {
		h.writeError(w, r, "*Handler.uploadBackup", app.MsgErrorReadingBackup, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	h.intakeMu.Lock()
	report, err := h.services.BackupService.Import(r.Context(), raw)
	h.intakeMu.Unlock()
	if err != nil {
		h.writeError(w, r, "*Handler.uploadBackup", app.MsgErrorImportingBackup, err)
		return
	}

	log.Info().
		Str("func", "*Handler.uploadBackup").
		Str("run_id", report.RunID).
		Int("created", report.Created()).
		Int("failed", len(report.Failures)).
		Msg("backup uploaded")

	utils.WriteJSON(w, report, http.StatusOK)
}
