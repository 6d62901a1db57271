package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Theworld7/VisiFind/internal/service"
	"github.com/Theworld7/VisiFind/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var mealTypes = []models.MealType{models.MealBreakfast, models.MealLunch, models.MealDinner}

// IntakeModel shows the totals of one day per meal against the daily limits.
type IntakeModel struct {
	ctx    context.Context
	intake service.IntakeService
	now    func() time.Time

	date    string
	loading bool
	errMsg  string
	data    intakeLoadedMsg
}

func NewIntakeModel(ctx context.Context, intake service.IntakeService) *IntakeModel {
	return &IntakeModel{
		ctx:    contextOrBackground(ctx),
		intake: intake,
		now:    time.Now,
	}
}

func (m *IntakeModel) Init() tea.Cmd {
	m.date = m.today()
	return m.load()
}

func (m *IntakeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case intakeLoadedMsg:
		if msg.date != m.date {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.data = msg
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.left):
			m.date = shiftDate(m.date, -1)
			return m, m.load()
		case key.Matches(msg, keys.right):
			m.date = shiftDate(m.date, 1)
			return m, m.load()
		case key.Matches(msg, keys.today):
			m.date = m.today()
			return m, m.load()
		case key.Matches(msg, keys.refresh):
			return m, m.load()
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
			return m, cmdNavigate(pageMenu)
		}
	}
	return m, nil
}

func (m *IntakeModel) View() string {
	var b strings.Builder

	b.WriteString("Date: ")
	b.WriteString(m.date)
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	default:
		b.WriteString(m.viewTable())
	}

	return renderPage("INTAKE", strings.TrimRight(b.String(), "\n"), "←/→: day │ t: today │ r: reload │ esc: back")
}

func (m *IntakeModel) viewTable() string {
	var b strings.Builder
	row := func(label, carbs, protein, fat, kcal string) {
		b.WriteString(fmt.Sprintf("%-10s │ %9s │ %9s │ %9s │ %8s\n", label, carbs, protein, fat, kcal))
	}

	row("Meal", "Carbs", "Protein", "Fat", "kcal")
	b.WriteString("───────────┼───────────┼───────────┼───────────┼─────────\n")
	for _, meal := range mealTypes {
		t := m.data.meals[meal]
		row(string(meal), formatGrams(t.Carbs), formatGrams(t.Protein), formatGrams(t.Fat), fmt.Sprintf("%.0f", t.Calories))
	}
	b.WriteString("───────────┼───────────┼───────────┼───────────┼─────────\n")

	t := m.data.totals
	l := m.data.limits
	row("total",
		againstLimit(t.Carbs, l.Carbs),
		againstLimit(t.Protein, l.Protein),
		againstLimit(t.Fat, l.Fat),
		fmt.Sprintf("%.0f", t.Calories),
	)
	row("limit", formatGrams(l.Carbs), formatGrams(l.Protein), formatGrams(l.Fat), "")

	b.WriteString(fmt.Sprintf("\nRecords: %d\n", m.data.records))
	return b.String()
}

// againstLimit renders v, highlighted when it exceeds a positive limit.
func againstLimit(v, limit float64) string {
	s := fmt.Sprintf("%9s", formatGrams(v))
	if limit > 0 && v > limit {
		return overLimitStyle.Render(s)
	}
	return s
}

func (m *IntakeModel) today() string {
	return m.now().Format(models.DateLayout)
}

func (m *IntakeModel) load() tea.Cmd {
	m.loading = true
	ctx := m.ctx
	svc := m.intake
	date := m.date

	return func() tea.Msg {
		if err := svc.LoadByDate(ctx, date); err != nil {
			return intakeLoadedMsg{date: date, err: err}
		}

		meals := make(map[models.MealType]models.NutrientTotals, len(mealTypes))
		for _, meal := range mealTypes {
			var t models.NutrientTotals
			for _, r := range svc.RecordsByMealType(date, meal) {
				t = t.Add(r)
			}
			meals[meal] = t
		}

		return intakeLoadedMsg{
			date:    date,
			records: len(svc.Records()),
			meals:   meals,
			totals:  svc.DailyTotals(date),
			limits:  svc.DailyLimits(),
		}
	}
}

func shiftDate(date string, days int) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(models.DateLayout)
}
