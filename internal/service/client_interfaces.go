package service

import (
	"context"
	"io"
	"time"

	"github.com/Theworld7/VisiFind/internal/search"
	"github.com/Theworld7/VisiFind/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// BookmarkService owns the in-memory list of bookmarks and keeps it
// consistent with the bookmark database. Mutations change the list only
// after the storage call has succeeded.
type BookmarkService interface {
	// Load replaces the in-memory list with a full scan of the database.
	Load(ctx context.Context) error

	// Bookmarks returns a copy of the in-memory list in display order.
	Bookmarks() []models.Bookmark

	// Add validates and stores bookmark, ignoring its ID, and appends it to
	// the list. Names are not checked for uniqueness.
	Add(ctx context.Context, bookmark models.Bookmark) (int64, error)

	// Update overwrites the bookmark identified by id.
	Update(ctx context.Context, id int64, bookmark models.Bookmark) error

	// Delete removes the bookmark identified by id.
	Delete(ctx context.Context, id int64) error

	// Reorder writes every bookmark of the complete, ordered list back in one
	// transaction and replaces the in-memory list with it.
	Reorder(ctx context.Context, bookmarks []models.Bookmark) error

	// Import adds every bookmark whose case-insensitive name is not present
	// yet and returns the number created. Per-record failures are joined
	// into the returned error as [*RecordImportError].
	Import(ctx context.Context, bookmarks []models.Bookmark) (int, error)
}

// BackgroundService owns the background settings singleton.
type BackgroundService interface {
	// Load reads the stored settings, keeping the defaults of absent fields.
	Load(ctx context.Context) error

	// Settings returns the in-memory settings.
	Settings() models.BackgroundSettings

	// Save persists the whole in-memory settings object.
	Save(ctx context.Context) error

	// Update applies the provided fields of patch and saves.
	Update(ctx context.Context, patch models.BackgroundPatch) error

	// Style returns the render-ready form of the in-memory settings.
	Style() models.BackgroundStyle

	// EffectiveURL is the image URL used for rendering in the current mode.
	EffectiveURL() string

	// RefreshBingWallpaper fetches today's Bing wallpaper, switches to bing
	// mode and saves. It returns the new wallpaper URL.
	RefreshBingWallpaper(ctx context.Context) (string, error)
}

// AppSettingsService owns the search engine preference.
type AppSettingsService interface {
	Load(ctx context.Context) error
	SearchEngine() search.Engine
	SetSearchEngine(ctx context.Context, engine search.Engine) error

	// SearchURL builds the query URL for the selected engine.
	SearchURL(query string) (string, error)
}

// FoodLibraryService owns the in-memory food library.
type FoodLibraryService interface {
	Load(ctx context.Context) error
	Foods() []models.FoodItem
	Add(ctx context.Context, food models.FoodItem) (int64, error)
	Update(ctx context.Context, id int64, food models.FoodItem) error
	Delete(ctx context.Context, id int64) error

	// Export returns the in-memory library without reading the database.
	Export() []models.FoodItem

	// Import adds every item whose case-insensitive name is not present yet.
	// Matches are skipped, never overwritten.
	Import(ctx context.Context, foods []models.FoodItem) (int, error)
}

// IntakeService owns the currently loaded intake records and the daily
// limits. Aggregations run over the loaded records only.
type IntakeService interface {
	LoadAll(ctx context.Context) error
	LoadByDate(ctx context.Context, date string) error

	// LoadByDateRange loads records with start <= date <= end.
	LoadByDateRange(ctx context.Context, start, end string) error

	Records() []models.IntakeRecord
	Add(ctx context.Context, record models.IntakeRecord) (int64, error)
	Delete(ctx context.Context, id int64) error

	RecordsByMealType(date string, meal models.MealType) []models.IntakeRecord
	DailyTotals(date string) models.NutrientTotals
	RangeTotals(start, end string) models.NutrientTotals

	// DailyTotalsForRange returns one row per calendar day in [start, end],
	// including zero rows for days without records.
	DailyTotalsForRange(start, end string) ([]models.DayTotals, error)

	Export() []models.IntakeRecord

	// Import appends every record unconditionally.
	Import(ctx context.Context, records []models.IntakeRecord) (int, error)

	LoadDailyLimits(ctx context.Context) (models.DailyLimits, error)
	SaveDailyLimits(ctx context.Context, limits models.DailyLimits) error
	DailyLimits() models.DailyLimits
}

// BackupService exports every domain into one snapshot and merges an
// imported snapshot back.
type BackupService interface {
	// Export reloads every domain and assembles a version 2 snapshot.
	Export(ctx context.Context) (models.Snapshot, error)

	// Encode writes snapshot as pretty-printed JSON.
	Encode(w io.Writer, snapshot models.Snapshot) error

	// FileName returns the file name of a backup taken at now.
	FileName(now time.Time) string

	// WriteFile exports into dir and returns the written path. The file
	// appears atomically.
	WriteFile(ctx context.Context, dir string, now time.Time) (string, error)

	// Import decodes raw as a version 1 or 2 snapshot and merges it.
	Import(ctx context.Context, raw []byte) (models.ImportReport, error)
}

// AppInfoService reports the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// BackupJob periodically writes backups into a directory.
type BackupJob interface {
	Start(ctx context.Context, dir string, interval time.Duration)
	Stop()
}
