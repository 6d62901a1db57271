package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Theworld7/VisiFind/internal/service"
	"github.com/Theworld7/VisiFind/internal/store"
	"github.com/Theworld7/VisiFind/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDownloadBackup(t *testing.T) {
	h, m := newMockedHandler(t)
	snapshot := models.Snapshot{
		Version:   models.SnapshotV2,
		Bookmarks: []models.Bookmark{{ID: 1, Name: "GitHub", URL: "https://github.com"}},
	}

	m.backup.EXPECT().Export(gomock.Any()).Return(snapshot, nil)
	m.backup.EXPECT().Encode(gomock.Any(), snapshot).DoAndReturn(func(w io.Writer, _ models.Snapshot) error {
		_, err := io.WriteString(w, `{"version":2}`)
		return err
	})
	m.backup.EXPECT().FileName(gomock.Any()).DoAndReturn(func(now time.Time) string {
		return "visifind-backup-2026-10-16.json"
	})

	rec := serve(t, h, http.MethodGet, "/api/backup", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="visifind-backup-2026-10-16.json"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, `{"version":2}`, rec.Body.String())
}

func TestDownloadBackup_ExportFails(t *testing.T) {
	h, m := newMockedHandler(t)
	m.backup.EXPECT().Export(gomock.Any()).
		Return(models.Snapshot{}, fmt.Errorf("%w: %w", service.ErrExportFailed, store.ErrStorageUnavailable))

	rec := serve(t, h, http.MethodGet, "/api/backup", nil)

	assert.GreaterOrEqual(t, rec.Code, http.StatusInternalServerError)
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
}

func TestDownloadBackup_EncodeFails(t *testing.T) {
	h, m := newMockedHandler(t)
	m.backup.EXPECT().Export(gomock.Any()).Return(models.Snapshot{Version: 2}, nil)
	m.backup.EXPECT().Encode(gomock.Any(), gomock.Any()).DoAndReturn(func(w io.Writer, _ models.Snapshot) error {
		io.WriteString(w, `{"vers`)
		return fmt.Errorf("%w: encode snapshot: %w", service.ErrExportFailed, errors.New("boom"))
	})

	rec := serve(t, h, http.MethodGet, "/api/backup", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), `{"vers`)
}

func TestUploadBackup(t *testing.T) {
	const raw = `{"version":1,"bookmarks":[{"name":"GitHub","url":"https://github.com"}]}`

	h, m := newMockedHandler(t)
	report := models.ImportReport{RunID: "run-1", Version: 1, Bookmarks: 1}
	m.backup.EXPECT().Import(gomock.Any(), []byte(raw)).Return(report, nil)

	rec := serve(t, h, http.MethodPost, "/api/backup", strings.NewReader(raw))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report, decodeResponse[models.ImportReport](t, rec))
}

func TestUploadBackup_ReportsFailures(t *testing.T) {
	h, m := newMockedHandler(t)
	report := models.ImportReport{
		RunID:   "run-2",
		Version: 2,
		Foods:   1,
		Failures: []models.ImportFailure{
			{Domain: service.DomainRecords, Index: 3, Name: "Rice", Err: "transaction failed"},
		},
	}
	m.backup.EXPECT().Import(gomock.Any(), gomock.Any()).Return(report, nil)

	rec := serve(t, h, http.MethodPost, "/api/backup", strings.NewReader(`{"version":2,"bookmarks":[]}`))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeResponse[models.ImportReport](t, rec)
	require.Len(t, got.Failures, 1)
	assert.Equal(t, service.DomainRecords, got.Failures[0].Domain)
}

func TestUploadBackup_Malformed(t *testing.T) {
	h, m := newMockedHandler(t)
	m.backup.EXPECT().Import(gomock.Any(), gomock.Any()).
		Return(models.ImportReport{}, fmt.Errorf("%w: missing bookmarks", service.ErrMalformedImportDocument))

	rec := serve(t, h, http.MethodPost, "/api/backup", strings.NewReader(`{"version":2}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrMalformedImportDocument.Error())
}
