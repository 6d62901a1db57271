package tui

import (
	"github.com/Theworld7/VisiFind/internal/search"
	"github.com/Theworld7/VisiFind/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to switch to Page. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type bookmarksLoadedMsg struct {
	items []models.Bookmark
	err   error
}

type bookmarkDeletedMsg struct {
	err error
}

type engineSavedMsg struct {
	engine search.Engine
	err    error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}

type intakeLoadedMsg struct {
	date    string
	records int
	meals   map[models.MealType]models.NutrientTotals
	totals  models.NutrientTotals
	limits  models.DailyLimits
	err     error
}

type backgroundLoadedMsg struct {
	settings     models.BackgroundSettings
	style        models.BackgroundStyle
	effectiveURL string
	err          error
}

type wallpaperRefreshedMsg struct {
	url string
	err error
}
