package store

import (
	"context"
	"encoding/json"

	"github.com/Theworld7/VisiFind/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// BookmarkRepository persists bookmarks of the bookmark database. Display
// order is kept in an internal position column.
type BookmarkRepository interface {
	ListBookmarks(ctx context.Context) ([]models.Bookmark, error)
	CreateBookmark(ctx context.Context, bookmark models.Bookmark) (int64, error)
	UpdateBookmark(ctx context.Context, bookmark models.Bookmark) error
	DeleteBookmark(ctx context.Context, id int64) error
	ReorderBookmarks(ctx context.Context, bookmarks []models.Bookmark) error
}

// SettingsRepository stores singleton JSON values by key.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (json.RawMessage, error)
	PutSetting(ctx context.Context, key string, value any) error
}

// FoodRepository persists the food library.
type FoodRepository interface {
	ListFoods(ctx context.Context) ([]models.FoodItem, error)
	CreateFood(ctx context.Context, food models.FoodItem) (int64, error)
	UpdateFood(ctx context.Context, food models.FoodItem) error
	DeleteFood(ctx context.Context, id int64) error
}

// IntakeRepository persists logged meals.
type IntakeRepository interface {
	ListRecords(ctx context.Context, filter RecordFilter) ([]models.IntakeRecord, error)
	CreateRecord(ctx context.Context, record models.IntakeRecord) (int64, error)
	DeleteRecord(ctx context.Context, id int64) error
}

// RecordFilter narrows [IntakeRepository.ListRecords]. Zero fields do not
// filter.
type RecordFilter struct {
	Date     string
	MealType models.MealType
}
