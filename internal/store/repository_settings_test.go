package store

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Theworld7/VisiFind/internal/logger"
)

func TestSettingsRepository_PutAndGet(t *testing.T) {
	ctx := testContext()
	repo := NewSettingsRepository(openTestDomain(t, t.TempDir(), IntakeDomain), logger.Nop())

	_, err := repo.GetSetting(ctx, SettingDailyLimits)
	require.ErrorIs(t, err, ErrSettingNotFound)

	require.NoError(t, repo.PutSetting(ctx, SettingDailyLimits, map[string]float64{"carbs": 250}))
	raw, err := repo.GetSetting(ctx, SettingDailyLimits)
	require.NoError(t, err)
	assert.JSONEq(t, `{"carbs":250}`, string(raw))

	// second put overwrites the singleton row
	require.NoError(t, repo.PutSetting(ctx, SettingDailyLimits, map[string]float64{"fat": 70}))
	raw, err = repo.GetSetting(ctx, SettingDailyLimits)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fat":70}`, string(raw))
}

func TestSettingsRepository_StringValue(t *testing.T) {
	ctx := testContext()
	repo := NewSettingsRepository(openTestDomain(t, t.TempDir(), BookmarkDomain), logger.Nop())

	require.NoError(t, repo.PutSetting(ctx, SettingSearchEngine, "sogou"))

	raw, err := repo.GetSetting(ctx, SettingSearchEngine)
	require.NoError(t, err)

	var engine string
	require.NoError(t, json.Unmarshal(raw, &engine))
	assert.Equal(t, "sogou", engine)
}

func TestSettingsRepository_EncodeError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSettingsRepository(newDBFromSQL(db, BookmarkDomain), logger.Nop())

	err := repo.PutSetting(testContext(), SettingBackgroundSettings, make(chan int))
	require.ErrorIs(t, err, ErrEncodingSetting)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_DBErrors(t *testing.T) {
	dbErr := errors.New("database is locked")

	t.Run("get", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings")).
			WithArgs(SettingSearchEngine).
			WillReturnError(dbErr)

		_, err := NewSettingsRepository(newDBFromSQL(db, BookmarkDomain), logger.Nop()).GetSetting(testContext(), SettingSearchEngine)
		require.ErrorIs(t, err, ErrExecutingQuery)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("put", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings")).
			WithArgs(SettingSearchEngine, `"bing"`).
			WillReturnError(dbErr)

		err := NewSettingsRepository(newDBFromSQL(db, BookmarkDomain), logger.Nop()).PutSetting(testContext(), SettingSearchEngine, "bing")
		require.ErrorIs(t, err, ErrTransactionFailed)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
