package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/utils"
	"github.com/Theworld7/VisiFind/models"
)

const (
	backupFilePrefix = "visifind-backup-"
	backupFileExt    = ".json"
)

type clientBackupService struct {
	bookmarks  BookmarkService
	background BackgroundService
	foods      FoodLibraryService
	intake     IntakeService

	runIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewClientBackupService creates the coordinator. It only talks to the
// domain services, never to storage.
func NewClientBackupService(
	bookmarks BookmarkService,
	background BackgroundService,
	foods FoodLibraryService,
	intake IntakeService,
	logger *logger.Logger,
) BackupService {
	return &clientBackupService{
		bookmarks:  bookmarks,
		background: background,
		foods:      foods,
		intake:     intake,
		runIDs:     utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

func (b *clientBackupService) Export(ctx context.Context) (models.Snapshot, error) {
	if err := b.bookmarks.Load(ctx); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if err := b.background.Load(ctx); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if err := b.foods.Load(ctx); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if err := b.intake.LoadAll(ctx); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	limits, err := b.intake.LoadDailyLimits(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	background := b.background.Settings().Patch()

	return models.Snapshot{
		Version:            models.SnapshotV2,
		Bookmarks:          nonNil(b.bookmarks.Bookmarks()),
		BackgroundSettings: &background,
		FoodLibrary:        nonNil(b.foods.Export()),
		IntakeRecords:      nonNil(b.intake.Export()),
		IntakeSettings:     &models.IntakeSettings{DailyLimits: &limits},
	}, nil
}

func (b *clientBackupService) Encode(w io.Writer, snapshot models.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("%w: encode snapshot: %w", ErrExportFailed, err)
	}
	return nil
}

// FileName uses the UTC calendar date of now.
func (b *clientBackupService) FileName(now time.Time) string {
	return backupFilePrefix + now.UTC().Format(models.DateLayout) + backupFileExt
}

// WriteFile encodes into a temporary file inside dir and renames it over the
// final name, so a failed export never leaves a partial backup behind.
func (b *clientBackupService) WriteFile(ctx context.Context, dir string, now time.Time) (string, error) {
	log := logger.FromContext(ctx)

	snapshot, err := b.Export(ctx)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create backup dir: %w", ErrExportFailed, err)
	}

	tmp, err := os.CreateTemp(dir, "."+backupFilePrefix+"*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %w", ErrExportFailed, err)
	}
	defer os.Remove(tmp.Name())

	if err = b.Encode(tmp, snapshot); err != nil {
		tmp.Close()
		return "", err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: sync temp file: %w", ErrExportFailed, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: close temp file: %w", ErrExportFailed, err)
	}

	path := filepath.Join(dir, b.FileName(now))
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("%w: rename backup: %w", ErrExportFailed, err)
	}

	log.Info().
		Str("func", "clientBackupService.WriteFile").
		Str("path", path).
		Int("bookmarks", len(snapshot.Bookmarks)).
		Int("foods", len(snapshot.FoodLibrary)).
		Int("records", len(snapshot.IntakeRecords)).
		Msg("backup written")

	return path, nil
}

// Import merges raw into the stores. Bookmarks are merged for every version;
// the other domains only for version 2. Records are stored one at a time and
// failures are collected into the report instead of aborting the run.
func (b *clientBackupService) Import(ctx context.Context, raw []byte) (models.ImportReport, error) {
	snapshot, err := DecodeSnapshot(raw)
	if err != nil {
		return models.ImportReport{}, err
	}

	report := models.ImportReport{RunID: b.runIDs.Generate(), Version: snapshot.Version}
	log := logger.FromContext(ctx).With().Str("run_id", report.RunID).Logger()

	// Dedup runs against durable state, not a possibly stale list.
	if err = b.bookmarks.Load(ctx); err != nil {
		return report, fmt.Errorf("import bookmarks: %w", err)
	}
	report.Bookmarks, err = b.bookmarks.Import(ctx, snapshot.Bookmarks)
	collectFailures(&report, err)
	if err = ctx.Err(); err != nil {
		return report, err
	}

	if snapshot.Version == models.SnapshotV2 {
		if err = b.importV2(ctx, snapshot, &report); err != nil {
			return report, err
		}
	}

	log.Info().
		Str("func", "clientBackupService.Import").
		Int("version", report.Version).
		Int("created", report.Created()).
		Int("failed", len(report.Failures)).
		Msg("snapshot imported")

	return report, nil
}

func (b *clientBackupService) importV2(ctx context.Context, snapshot models.Snapshot, report *models.ImportReport) error {
	if snapshot.BackgroundSettings != nil {
		if err := b.background.Load(ctx); err != nil {
			return fmt.Errorf("import background settings: %w", err)
		}
		if err := b.background.Update(ctx, *snapshot.BackgroundSettings); err != nil {
			collectFailures(report, &RecordImportError{Domain: DomainSettings, Name: "backgroundSettings", Err: err})
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	if err := b.foods.Load(ctx); err != nil {
		return fmt.Errorf("import foods: %w", err)
	}
	created, err := b.foods.Import(ctx, snapshot.FoodLibrary)
	report.Foods = created
	collectFailures(report, err)
	if err = ctx.Err(); err != nil {
		return err
	}

	created, err = b.intake.Import(ctx, snapshot.IntakeRecords)
	report.Records = created
	collectFailures(report, err)
	if err = ctx.Err(); err != nil {
		return err
	}

	if snapshot.IntakeSettings != nil && snapshot.IntakeSettings.DailyLimits != nil {
		if err = b.intake.SaveDailyLimits(ctx, *snapshot.IntakeSettings.DailyLimits); err != nil {
			collectFailures(report, &RecordImportError{Domain: DomainSettings, Name: "dailyLimits", Err: err})
		}
	}

	return nil
}

// collectFailures adds every [*RecordImportError] found in err to report.
// Other errors, such as context cancellation, are handled by the caller.
func collectFailures(report *models.ImportReport, err error) {
	if err == nil {
		return
	}

	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	for _, e := range errs {
		var recErr *RecordImportError
		if !errors.As(e, &recErr) {
			continue
		}
		report.Failures = append(report.Failures, models.ImportFailure{
			Domain: recErr.Domain,
			Index:  recErr.Index,
			Name:   recErr.Name,
			Err:    recErr.Err.Error(),
		})
	}
}

// DecodeSnapshot decodes raw strictly into a version 1 or version 2 backup
// document. A version 1 document is returned as a [models.Snapshot] carrying
// only bookmarks. Any mismatch yields [ErrMalformedImportDocument].
func DecodeSnapshot(raw []byte) (models.Snapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedImportDocument, err)
	}

	bookmarks, ok := fields["bookmarks"]
	if !ok {
		return models.Snapshot{}, fmt.Errorf("%w: missing bookmarks", ErrMalformedImportDocument)
	}
	if trimmed := bytes.TrimSpace(bookmarks); len(trimmed) == 0 || trimmed[0] != '[' {
		return models.Snapshot{}, fmt.Errorf("%w: bookmarks must be an array", ErrMalformedImportDocument)
	}

	var header models.SnapshotHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedImportDocument, err)
	}

	switch header.Version {
	case models.SnapshotV1:
		var legacy models.SnapshotLegacy
		if err := strictDecode(raw, &legacy); err != nil {
			return models.Snapshot{}, err
		}
		return models.Snapshot{Version: models.SnapshotV1, Bookmarks: legacy.Bookmarks}, nil

	case models.SnapshotV2:
		var snapshot models.Snapshot
		if err := strictDecode(raw, &snapshot); err != nil {
			return models.Snapshot{}, err
		}
		return snapshot, nil

	default:
		return models.Snapshot{}, fmt.Errorf("%w: unsupported version %d", ErrMalformedImportDocument, header.Version)
	}
}

func strictDecode(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedImportDocument, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after document", ErrMalformedImportDocument)
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
