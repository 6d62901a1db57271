package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/models"
)

func TestOpenDomain_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	db := openTestDomain(t, dir, BookmarkDomain)

	_, err := os.Stat(filepath.Join(dir, BookmarkDomain.File))
	require.NoError(t, err)
	assert.Equal(t, BookmarkDomain, db.Spec())
}

func TestOpenDomain_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := testContext()

	db, err := OpenDomain(ctx, dir, FoodDomain, logger.Nop())
	require.NoError(t, err)
	_, err = NewFoodRepository(db, logger.Nop()).CreateFood(ctx, models.FoodItem{Name: "Rice"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened := openTestDomain(t, dir, FoodDomain)
	foods, err := NewFoodRepository(reopened, logger.Nop()).ListFoods(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Rice", foods[0].Name)
}

func TestOpenDomain_UpgradeFromVersionOne(t *testing.T) {
	dir := t.TempDir()
	ctx := testContext()

	v1 := BookmarkDomain
	v1.Version = 1

	old, err := OpenDomain(ctx, dir, v1, logger.Nop())
	require.NoError(t, err)
	_, err = NewBookmarkRepository(old, logger.Nop()).CreateBookmark(ctx, models.Bookmark{Name: "A", URL: "http://a"})
	require.NoError(t, err)
	require.NoError(t, old.Close())

	db := openTestDomain(t, dir, BookmarkDomain)

	bookmarks, err := NewBookmarkRepository(db, logger.Nop()).ListBookmarks(ctx)
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)

	settings := NewSettingsRepository(db, logger.Nop())
	require.NoError(t, settings.PutSetting(ctx, SettingSearchEngine, "bing"))
}

func TestOpenDomain_NewerSchemaUnavailable(t *testing.T) {
	dir := t.TempDir()
	ctx := testContext()

	current, err := OpenDomain(ctx, dir, IntakeDomain, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, current.Close())

	older := IntakeDomain
	older.Version = 1

	db, err := OpenDomain(ctx, dir, older, logger.Nop())
	require.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Nil(t, db)
}

func TestOpenDomain_DataDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	db, err := OpenDomain(testContext(), file, FoodDomain, logger.Nop())
	require.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Nil(t, db)
}
