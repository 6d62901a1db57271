package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Theworld7/VisiFind/internal/mock"
	"github.com/Theworld7/VisiFind/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newIntakeFixture(t *testing.T) (*IntakeModel, *mock.MockIntakeService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockIntakeService(ctrl)

	m := NewIntakeModel(context.Background(), svc)
	m.now = func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC) }
	return m, svc
}

func expectIntakeDay(svc *mock.MockIntakeService, date string) {
	lunch := []models.IntakeRecord{
		{FoodName: "Rice", Carbs: 56, Protein: 5, Fat: 1, Calories: 260, MealType: models.MealLunch, Date: date},
		{FoodName: "Chicken", Carbs: 0, Protein: 31, Fat: 4, Calories: 165, MealType: models.MealLunch, Date: date},
	}

	svc.EXPECT().LoadByDate(gomock.Any(), date).Return(nil)
	svc.EXPECT().RecordsByMealType(date, models.MealBreakfast).Return(nil)
	svc.EXPECT().RecordsByMealType(date, models.MealLunch).Return(lunch)
	svc.EXPECT().RecordsByMealType(date, models.MealDinner).Return(nil)
	svc.EXPECT().Records().Return(lunch)
	svc.EXPECT().DailyTotals(date).Return(models.NutrientTotals{Carbs: 56, Protein: 36, Fat: 5, Calories: 425})
	svc.EXPECT().DailyLimits().Return(models.DailyLimits{Carbs: 300, Protein: 30, Fat: 60})
}

func TestIntake_InitLoadsToday(t *testing.T) {
	m, svc := newIntakeFixture(t)
	expectIntakeDay(svc, "2026-10-16")

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Equal(t, "2026-10-16", m.date)
	assert.True(t, m.loading)

	m.Update(cmd())

	assert.False(t, m.loading)
	assert.Equal(t, 2, m.data.records)
	assert.Equal(t, models.NutrientTotals{Carbs: 56, Protein: 36, Fat: 5, Calories: 425}, m.data.meals[models.MealLunch])
	assert.Equal(t, models.NutrientTotals{}, m.data.meals[models.MealBreakfast])

	view := m.View()
	assert.Contains(t, view, "Date: 2026-10-16")
	assert.Contains(t, view, "lunch")
	assert.Contains(t, view, "56.0g")
	assert.Contains(t, view, "Records: 2")
}

func TestIntake_ChangeDay(t *testing.T) {
	m, svc := newIntakeFixture(t)
	m.date = "2026-10-16"
	expectIntakeDay(svc, "2026-10-15")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.NotNil(t, cmd)
	assert.Equal(t, "2026-10-15", m.date)

	m.Update(cmd())
	assert.False(t, m.loading)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	require.NotNil(t, cmd)
	assert.Equal(t, "2026-10-16", m.date)
}

func TestIntake_IgnoresStaleLoads(t *testing.T) {
	m, _ := newIntakeFixture(t)
	m.date = "2026-10-16"
	m.loading = true

	m.Update(intakeLoadedMsg{date: "2026-10-15", records: 7})

	assert.True(t, m.loading)
	assert.Zero(t, m.data.records)
}

func TestIntake_LoadError(t *testing.T) {
	m, svc := newIntakeFixture(t)
	svc.EXPECT().LoadByDate(gomock.Any(), "2026-10-16").Return(errors.New("disk I/O error"))

	cmd := m.Init()
	m.Update(cmd())

	assert.Equal(t, "disk I/O error", m.errMsg)
	assert.Contains(t, m.View(), "disk I/O error")
}

func TestIntake_EscReturnsToMenu(t *testing.T) {
	m, _ := newIntakeFixture(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu}, cmd())
}

func TestAgainstLimit(t *testing.T) {
	assert.Contains(t, againstLimit(36, 30), "36.0g")
	assert.Equal(t, "    12.0g", againstLimit(12, 30))
	assert.Equal(t, "    50.0g", againstLimit(50, 0))
}
