package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/mock"
	"github.com/Theworld7/VisiFind/internal/search"
	"github.com/Theworld7/VisiFind/internal/store"
)

func TestAppSettingsService_DefaultEngine(t *testing.T) {
	svc := newTestServices(t).AppSettingsService

	require.NoError(t, svc.Load(testContext()))
	assert.Equal(t, search.Baidu, svc.SearchEngine())
}

func TestAppSettingsService_SetAndReload(t *testing.T) {
	ctx := testContext()
	storages := openTestStorages(t, t.TempDir())
	svc := NewClientAppSettingsService(storages.BookmarkSettings, logger.Nop())

	require.NoError(t, svc.SetSearchEngine(ctx, search.Google))
	assert.Equal(t, search.Google, svc.SearchEngine())

	reloaded := NewClientAppSettingsService(storages.BookmarkSettings, logger.Nop())
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, search.Google, reloaded.SearchEngine())

	got, err := reloaded.SearchURL("go generics")
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/search?q=go+generics", got)
}

func TestAppSettingsService_UnknownEngine(t *testing.T) {
	ctx := testContext()
	storages := openTestStorages(t, t.TempDir())
	svc := NewClientAppSettingsService(storages.BookmarkSettings, logger.Nop())

	err := svc.SetSearchEngine(ctx, search.Engine("altavista"))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, search.ErrUnknownEngine)

	require.NoError(t, storages.BookmarkSettings.PutSetting(ctx, store.SettingSearchEngine, "altavista"))
	require.NoError(t, svc.Load(ctx))
	assert.Equal(t, search.DefaultEngine, svc.SearchEngine())
}

func TestAppSettingsService_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsRepository(ctrl)
	svc := NewClientAppSettingsService(settings, logger.Nop())

	settings.EXPECT().GetSetting(gomock.Any(), store.SettingSearchEngine).Return(nil, store.ErrExecutingQuery)
	assert.ErrorIs(t, svc.Load(testContext()), store.ErrExecutingQuery)

	settings.EXPECT().PutSetting(gomock.Any(), store.SettingSearchEngine, "bing").Return(store.ErrTransactionFailed)
	assert.ErrorIs(t, svc.SetSearchEngine(testContext(), search.Bing), store.ErrTransactionFailed)
	assert.Equal(t, search.Baidu, svc.SearchEngine())
}
