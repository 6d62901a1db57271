package tui

import (
	"errors"
	"testing"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/service"
	"github.com/Theworld7/VisiFind/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)

	ui, err := New(&service.ClientServices{}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)

	pages := ui.pages(t.Context())
	assert.Len(t, pages, 4)
	assert.Contains(t, pages, pageMenu)
	assert.Contains(t, pages, pageBookmarks)
	assert.Contains(t, pages, pageIntake)
	assert.Contains(t, pages, pageBackground)
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "Bing wallpaper is unavailable right now", humanizeError(service.ErrWallpaperUnavailable))
	assert.Equal(t, "something broke", humanizeError(errors.New("something broke")))
}
