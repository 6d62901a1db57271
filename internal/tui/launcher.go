package tui

import (
	"context"
	"strings"

	"github.com/Theworld7/VisiFind/internal/search"
	"github.com/Theworld7/VisiFind/internal/service"
	"github.com/Theworld7/VisiFind/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LauncherModel is the bookmark list with a search box on top. Typing
// filters the list; enter copies the selected bookmark URL, or the web
// search URL of the typed query when nothing matches.
type LauncherModel struct {
	ctx       context.Context
	bookmarks service.BookmarkService
	settings  service.AppSettingsService
	copyText  clipboardWriter

	input   textinput.Model
	list    bookmarkList
	loading bool
	status  string
	errMsg  string

	pendingDelete *models.Bookmark
}

func NewLauncherModel(ctx context.Context, bookmarks service.BookmarkService, settings service.AppSettingsService) *LauncherModel {
	input := textinput.New()
	input.Placeholder = "filter bookmarks or search the web"
	input.Prompt = "> "
	input.Width = 50
	input.Focus()

	return &LauncherModel{
		ctx:       contextOrBackground(ctx),
		bookmarks: bookmarks,
		settings:  settings,
		copyText:  systemClipboard,
		input:     input,
	}
}

func (m *LauncherModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(textinput.Blink, m.cmdLoadBookmarks())
}

func (m *LauncherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bookmarksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.list.setItems(msg.items)
		return m, nil
	case bookmarkDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Deleted"
		return m, tea.Batch(m.cmdLoadBookmarks(), cmdClearStatus())
	case engineSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Search engine: " + string(msg.engine)
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Copied " + fitText(msg.text, 60)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *LauncherModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pendingDelete != nil {
		switch {
		case key.Matches(msg, keys.yes):
			id := m.pendingDelete.ID
			m.pendingDelete = nil
			return m, m.cmdDelete(id)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.pendingDelete = nil
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyUp:
		m.list.move(-1)
		return m, nil
	case tea.KeyDown:
		m.list.move(1)
		return m, nil
	case tea.KeyEnter:
		if b, ok := m.list.current(); ok {
			return m, cmdCopyToClipboard(m.copyText, b.URL)
		}
		return m, m.cmdSearch()
	case tea.KeyCtrlS:
		return m, m.cmdSearch()
	case tea.KeyEsc:
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.list.setFilter("")
			return m, nil
		}
		return m, cmdNavigate(pageMenu)
	}

	switch {
	case key.Matches(msg, keys.engine):
		return m, m.cmdCycleEngine()
	case key.Matches(msg, keys.delete):
		if b, ok := m.list.current(); ok {
			m.pendingDelete = &b
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.list.setFilter(m.input.Value())
	return m, cmd
}

func (m *LauncherModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("engine: " + string(m.settings.SearchEngine())))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading bookmarks...\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.pendingDelete != nil {
		b.WriteString("\n")
		b.WriteString(confirmModel{message: m.pendingDelete.Name}.View())
		b.WriteString("\n")
	}

	return renderPage(
		"BOOKMARKS",
		strings.TrimRight(b.String(), "\n"),
		"enter: copy url │ ctrl+s: web search │ ctrl+e: engine │ ctrl+d: delete │ ↑/↓: navigate │ esc: back",
	)
}

func (m *LauncherModel) cmdLoadBookmarks() tea.Cmd {
	ctx := m.ctx
	svc := m.bookmarks

	return func() tea.Msg {
		if err := svc.Load(ctx); err != nil {
			return bookmarksLoadedMsg{err: err}
		}
		return bookmarksLoadedMsg{items: svc.Bookmarks()}
	}
}

func (m *LauncherModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.bookmarks

	return func() tea.Msg {
		return bookmarkDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m *LauncherModel) cmdSearch() tea.Cmd {
	target, err := m.settings.SearchURL(m.input.Value())
	if err != nil {
		return func() tea.Msg { return copiedMsg{err: err} }
	}
	return cmdCopyToClipboard(m.copyText, target)
}

func (m *LauncherModel) cmdCycleEngine() tea.Cmd {
	ctx := m.ctx
	svc := m.settings
	next := nextEngine(svc.SearchEngine())

	return func() tea.Msg {
		return engineSavedMsg{engine: next, err: svc.SetSearchEngine(ctx, next)}
	}
}

func nextEngine(current search.Engine) search.Engine {
	engines := search.Engines()
	for i, e := range engines {
		if e == current {
			return engines[(i+1)%len(engines)]
		}
	}
	return engines[0]
}
