package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/mock"
	"github.com/Theworld7/VisiFind/internal/store"
	"github.com/Theworld7/VisiFind/models"
)

// seedAllDomains fills every domain with one entry.
func seedAllDomains(t *testing.T, services *ClientServices) {
	t.Helper()
	ctx := testContext()

	_, err := services.BookmarkService.Add(ctx, models.Bookmark{Name: "GitHub", URL: "https://github.com", Group: "dev"})
	require.NoError(t, err)
	require.NoError(t, services.BackgroundService.Update(ctx, models.BackgroundPatch{
		BackgroundInputMode: ptr("url"),
		BackgroundURL:       ptr("https://img/a.png"),
		BackgroundBlur:      ptr(3.0),
	}))
	_, err = services.FoodLibraryService.Add(ctx, rice())
	require.NoError(t, err)
	_, err = services.IntakeService.Add(ctx, meal("2024-01-02", models.MealLunch, 20, 2, 2, 100))
	require.NoError(t, err)
	require.NoError(t, services.IntakeService.SaveDailyLimits(ctx, models.DailyLimits{Carbs: 250, Protein: 80, Fat: 50}))
}

func exportJSON(t *testing.T, services *ClientServices) []byte {
	t.Helper()
	snapshot, err := services.BackupService.Export(testContext())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, services.BackupService.Encode(&buf, snapshot))
	return buf.Bytes()
}

func TestBackupService_ExportAssemblesEveryDomain(t *testing.T) {
	services := newTestServices(t)
	seedAllDomains(t, services)

	snapshot, err := services.BackupService.Export(testContext())
	require.NoError(t, err)

	assert.Equal(t, models.SnapshotV2, snapshot.Version)
	require.Len(t, snapshot.Bookmarks, 1)
	assert.Equal(t, "GitHub", snapshot.Bookmarks[0].Name)
	require.NotNil(t, snapshot.BackgroundSettings)
	assert.Equal(t, "url", *snapshot.BackgroundSettings.BackgroundInputMode)
	assert.Equal(t, 3.0, *snapshot.BackgroundSettings.BackgroundBlur)
	assert.Len(t, snapshot.FoodLibrary, 1)
	assert.Len(t, snapshot.IntakeRecords, 1)
	require.NotNil(t, snapshot.IntakeSettings)
	assert.Equal(t, &models.DailyLimits{Carbs: 250, Protein: 80, Fat: 50}, snapshot.IntakeSettings.DailyLimits)
}

func TestBackupService_ExportEmptyStoresHasArrays(t *testing.T) {
	services := newTestServices(t)

	raw := exportJSON(t, services)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.JSONEq(t, `[]`, string(doc["bookmarks"]))
	assert.JSONEq(t, `[]`, string(doc["foodLibrary"]))
	assert.JSONEq(t, `[]`, string(doc["intakeRecords"]))
	assert.JSONEq(t, `2`, string(doc["version"]))
	assert.Contains(t, string(raw), "\n  \"version\": 2,")
}

func TestBackupService_ExportReloadsDurableState(t *testing.T) {
	dir := t.TempDir()
	storages := openTestStorages(t, dir)
	services := NewClientServices(storages, nil, logger.Nop())

	// written behind the service's back
	_, err := storages.BookmarkRepository.CreateBookmark(testContext(), models.Bookmark{Name: "Direct", URL: "http://d"})
	require.NoError(t, err)

	snapshot, err := services.BackupService.Export(testContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"Direct"}, bookmarkNames(snapshot.Bookmarks))
}

func TestBackupService_ReimportAsymmetry(t *testing.T) {
	ctx := testContext()
	source := newTestServices(t)
	seedAllDomains(t, source)
	raw := exportJSON(t, source)

	target := newTestServices(t)

	first, err := target.BackupService.Import(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Bookmarks)
	assert.Equal(t, 1, first.Foods)
	assert.Equal(t, 1, first.Records)
	assert.Equal(t, 3, first.Created())
	assert.Empty(t, first.Failures)
	assert.NotEmpty(t, first.RunID)

	second, err := target.BackupService.Import(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Bookmarks)
	assert.Equal(t, 0, second.Foods)
	assert.Equal(t, 1, second.Records)
	assert.NotEqual(t, first.RunID, second.RunID)

	snapshot, err := target.BackupService.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot.Bookmarks, 1)
	assert.Len(t, snapshot.FoodLibrary, 1)
	assert.Len(t, snapshot.IntakeRecords, 2, "intake records are append-only")
	assert.Equal(t, &models.DailyLimits{Carbs: 250, Protein: 80, Fat: 50}, snapshot.IntakeSettings.DailyLimits)
	assert.Equal(t, "https://img/a.png", target.BackgroundService.EffectiveURL())
}

func TestBackupService_ImportDedupIsCaseInsensitive(t *testing.T) {
	ctx := testContext()
	services := newTestServices(t)
	_, err := services.BookmarkService.Add(ctx, models.Bookmark{Name: "github", URL: "https://github.com"})
	require.NoError(t, err)

	report, err := services.BackupService.Import(ctx, []byte(`{"version":1,"bookmarks":[{"name":"GitHub","url":"https://github.com"}]}`))

	require.NoError(t, err)
	assert.Equal(t, 0, report.Created())
	assert.Len(t, services.BookmarkService.Bookmarks(), 1)
}

func TestBackupService_ImportV1Isolation(t *testing.T) {
	ctx := testContext()
	services := newTestServices(t)

	report, err := services.BackupService.Import(ctx, []byte(`{"version":1,"bookmarks":[{"name":"A","url":"http://a"}]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created())
	assert.Equal(t, models.SnapshotV1, report.Version)

	snapshot, err := services.BackupService.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, bookmarkNames(snapshot.Bookmarks))
	assert.Empty(t, snapshot.FoodLibrary)
	assert.Empty(t, snapshot.IntakeRecords)
	assert.Equal(t, models.DefaultBackgroundSettings().Patch(), *snapshot.BackgroundSettings)
	assert.Equal(t, models.DefaultDailyLimits(), *snapshot.IntakeSettings.DailyLimits)
}

func TestBackupService_ImportV1TouchesOnlyBookmarks(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	bookmarks := mock.NewMockBookmarkService(ctrl)
	background := mock.NewMockBackgroundService(ctrl)
	foods := mock.NewMockFoodLibraryService(ctrl)
	intake := mock.NewMockIntakeService(ctrl)
	svc := NewClientBackupService(bookmarks, background, foods, intake, logger.Nop())

	bookmarks.EXPECT().Load(ctx).Return(nil)
	// the other services have no expectations: any call fails the test
	bookmarks.EXPECT().Import(ctx, []models.Bookmark{{ID: 7, Name: "A", URL: "http://a"}}).Return(1, nil)

	report, err := svc.Import(ctx, []byte(`{"version":1,"bookmarks":[{"id":7,"name":"A","url":"http://a"}]}`))

	require.NoError(t, err)
	assert.Equal(t, 1, report.Bookmarks)
	assert.Equal(t, 1, report.Created())
}

func TestBackupService_ImportPartialBackground(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	bookmarks := mock.NewMockBookmarkService(ctrl)
	background := mock.NewMockBackgroundService(ctrl)
	foods := mock.NewMockFoodLibraryService(ctrl)
	intake := mock.NewMockIntakeService(ctrl)
	svc := NewClientBackupService(bookmarks, background, foods, intake, logger.Nop())

	gomock.InOrder(
		bookmarks.EXPECT().Load(ctx).Return(nil),
		bookmarks.EXPECT().Import(ctx, []models.Bookmark{}).Return(0, nil),
		background.EXPECT().Load(ctx).Return(nil),
		background.EXPECT().Update(ctx, models.BackgroundPatch{BackgroundBlur: ptr(6.0)}).Return(nil),
		foods.EXPECT().Load(ctx).Return(nil),
		foods.EXPECT().Import(ctx, gomock.Nil()).Return(0, nil),
		intake.EXPECT().Import(ctx, gomock.Nil()).Return(0, nil),
	)

	report, err := svc.Import(ctx, []byte(`{"version":2,"bookmarks":[],"backgroundSettings":{"backgroundBlur":6}}`))

	require.NoError(t, err)
	assert.Equal(t, 0, report.Created())
}

func TestBackupService_ImportCollectsFailures(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	bookmarks := mock.NewMockBookmarkService(ctrl)
	background := mock.NewMockBackgroundService(ctrl)
	foods := mock.NewMockFoodLibraryService(ctrl)
	intake := mock.NewMockIntakeService(ctrl)
	svc := NewClientBackupService(bookmarks, background, foods, intake, logger.Nop())

	bookmarkErr := errors.Join(&RecordImportError{Domain: DomainBookmarks, Index: 2, Name: "X", Err: store.ErrTransactionFailed})
	bookmarks.EXPECT().Load(ctx).Return(nil)
	bookmarks.EXPECT().Import(ctx, gomock.Any()).Return(2, bookmarkErr)
	foods.EXPECT().Load(ctx).Return(nil)
	foods.EXPECT().Import(ctx, gomock.Any()).Return(1, nil)
	intake.EXPECT().Import(ctx, gomock.Any()).Return(4, nil)
	intake.EXPECT().SaveDailyLimits(ctx, models.DailyLimits{Carbs: 1, Protein: 2, Fat: 3}).Return(store.ErrTransactionFailed)

	report, err := svc.Import(ctx, []byte(`{
		"version": 2,
		"bookmarks": [],
		"foodLibrary": [],
		"intakeRecords": [],
		"intakeSettings": {"dailyLimits": {"carbs": 1, "protein": 2, "fat": 3}}
	}`))

	require.NoError(t, err)
	assert.Equal(t, 7, report.Created())
	assert.Equal(t, []models.ImportFailure{
		{Domain: DomainBookmarks, Index: 2, Name: "X", Err: store.ErrTransactionFailed.Error()},
		{Domain: DomainSettings, Name: "dailyLimits", Err: store.ErrTransactionFailed.Error()},
	}, report.Failures)
}

func TestBackupService_ImportStopsWhenCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	bookmarks := mock.NewMockBookmarkService(ctrl)
	svc := NewClientBackupService(bookmarks, mock.NewMockBackgroundService(ctrl),
		mock.NewMockFoodLibraryService(ctrl), mock.NewMockIntakeService(ctrl), logger.Nop())

	ctx, cancel := context.WithCancel(testContext())
	bookmarks.EXPECT().Load(ctx).Return(nil)
	bookmarks.EXPECT().Import(ctx, gomock.Any()).DoAndReturn(func(context.Context, []models.Bookmark) (int, error) {
		cancel()
		return 1, context.Canceled
	})

	report, err := svc.Import(ctx, []byte(`{"version":2,"bookmarks":[{"name":"A","url":"http://a"}],"foodLibrary":[]}`))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, report.Bookmarks)
}

func TestBackupService_ImportStorageUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	bookmarks := mock.NewMockBookmarkService(ctrl)
	svc := NewClientBackupService(bookmarks, mock.NewMockBackgroundService(ctrl),
		mock.NewMockFoodLibraryService(ctrl), mock.NewMockIntakeService(ctrl), logger.Nop())

	bookmarks.EXPECT().Load(gomock.Any()).Return(store.ErrStorageUnavailable)

	_, err := svc.Import(testContext(), []byte(`{"version":1,"bookmarks":[]}`))

	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestDecodeSnapshot(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantErr     bool
		wantVersion int
		wantCount   int
	}{
		{name: "v1", raw: `{"version":1,"bookmarks":[{"name":"A","url":"http://a"}]}`, wantVersion: 1, wantCount: 1},
		{name: "v2 minimal", raw: `{"version":2,"bookmarks":[]}`, wantVersion: 2},
		{name: "v2 full", raw: `{"version":2,"bookmarks":[{"id":3,"name":"A","url":"http://a","customIcon":"i","group":"g","description":"d"}],"backgroundSettings":{"backgroundUrl":"","backgroundInputMode":"color","backgroundBlur":0,"backgroundColor":"#1a1a2e","bingWallpaperUrl":""},"foodLibrary":[],"intakeRecords":[],"intakeSettings":{}}`, wantVersion: 2, wantCount: 1},
		{name: "not json", raw: `bookmarks`, wantErr: true},
		{name: "array", raw: `[]`, wantErr: true},
		{name: "missing bookmarks", raw: `{"version":2}`, wantErr: true},
		{name: "bookmarks null", raw: `{"version":2,"bookmarks":null}`, wantErr: true},
		{name: "bookmarks object", raw: `{"version":2,"bookmarks":{"name":"A"}}`, wantErr: true},
		{name: "missing version", raw: `{"bookmarks":[]}`, wantErr: true},
		{name: "unknown version", raw: `{"version":3,"bookmarks":[]}`, wantErr: true},
		{name: "string version", raw: `{"version":"2","bookmarks":[]}`, wantErr: true},
		{name: "v1 with v2 fields", raw: `{"version":1,"bookmarks":[],"foodLibrary":[]}`, wantErr: true},
		{name: "unknown field", raw: `{"version":2,"bookmarks":[],"extra":true}`, wantErr: true},
		{name: "unknown nested field", raw: `{"version":2,"bookmarks":[{"name":"A","url":"u","rank":1}]}`, wantErr: true},
		{name: "wrong typed food library", raw: `{"version":2,"bookmarks":[],"foodLibrary":{}}`, wantErr: true},
		{name: "trailing data", raw: `{"version":1,"bookmarks":[]} {}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSnapshot([]byte(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedImportDocument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, got.Version)
			assert.Len(t, got.Bookmarks, tt.wantCount)
		})
	}
}

func TestBackupService_MalformedDocumentChangesNothing(t *testing.T) {
	services := newTestServices(t)

	_, err := services.BackupService.Import(testContext(), []byte(`{"version":2,"bookmarks":"oops"}`))

	assert.ErrorIs(t, err, ErrMalformedImportDocument)
	require.NoError(t, services.BookmarkService.Load(testContext()))
	assert.Empty(t, services.BookmarkService.Bookmarks())
}

func TestBackupService_FileName(t *testing.T) {
	svc := newTestServices(t).BackupService

	now := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("UTC+8", 8*3600))

	assert.Equal(t, "visifind-backup-2024-03-09.json", svc.FileName(now))
}

func TestBackupService_WriteFile(t *testing.T) {
	services := newTestServices(t)
	seedAllDomains(t, services)
	dir := filepath.Join(t.TempDir(), "backups")
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	path, err := services.BackupService.WriteFile(testContext(), dir, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "visifind-backup-2024-05-01.json"), path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files remain")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	snapshot, err := DecodeSnapshot(raw)
	require.NoError(t, err)
	assert.Len(t, snapshot.Bookmarks, 1)
}

func TestBackupService_WriteFileExportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	bookmarks := mock.NewMockBookmarkService(ctrl)
	svc := NewClientBackupService(bookmarks, mock.NewMockBackgroundService(ctrl),
		mock.NewMockFoodLibraryService(ctrl), mock.NewMockIntakeService(ctrl), logger.Nop())
	dir := t.TempDir()

	bookmarks.EXPECT().Load(gomock.Any()).Return(store.ErrExecutingQuery)

	_, err := svc.WriteFile(testContext(), dir, time.Now())

	assert.ErrorIs(t, err, ErrExportFailed)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
