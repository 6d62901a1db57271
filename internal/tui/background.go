package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Theworld7/VisiFind/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// BackgroundModel shows the background settings and refreshes the Bing
// wallpaper on demand.
type BackgroundModel struct {
	ctx        context.Context
	background service.BackgroundService
	copyText   clipboardWriter

	spinner    spinner.Model
	refreshing bool
	status     string
	errMsg     string
	data       backgroundLoadedMsg
}

func NewBackgroundModel(ctx context.Context, background service.BackgroundService) *BackgroundModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &BackgroundModel{
		ctx:        contextOrBackground(ctx),
		background: background,
		copyText:   systemClipboard,
		spinner:    s,
	}
}

func (m *BackgroundModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *BackgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case backgroundLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.data = msg
		return m, nil
	case wallpaperRefreshedMsg:
		m.refreshing = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Wallpaper updated"
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Copied"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.errMsg != "" && (key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc)) {
			m.errMsg = ""
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.refresh):
			if m.refreshing {
				return m, nil
			}
			m.refreshing = true
			return m, tea.Batch(m.spinner.Tick, m.cmdRefresh())
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.copyText, m.data.effectiveURL)
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
			return m, cmdNavigate(pageMenu)
		}
	}
	return m, nil
}

func (m *BackgroundModel) View() string {
	s := m.data.settings
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Mode      │ %s\n", valueOrDash(string(s.BackgroundInputMode))))
	b.WriteString(fmt.Sprintf("Color     │ %s\n", valueOrDash(s.BackgroundColor)))
	b.WriteString(fmt.Sprintf("Image URL │ %s\n", fitText(valueOrDash(s.BackgroundURL), 60)))
	b.WriteString(fmt.Sprintf("Bing URL  │ %s\n", fitText(valueOrDash(s.BingWallpaperURL), 60)))
	b.WriteString(fmt.Sprintf("Blur      │ %s\n", valueOrDash(m.data.style.Blur)))
	b.WriteString(fmt.Sprintf("In use    │ %s\n", fitText(valueOrDash(m.data.effectiveURL), 60)))

	if m.refreshing {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" fetching Bing wallpaper...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorOverlayModel{message: m.errMsg}.View())
		b.WriteString("\n")
	}

	return renderPage("BACKGROUND", strings.TrimRight(b.String(), "\n"), "r: bing wallpaper │ c: copy url │ esc: back")
}

func (m *BackgroundModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.background

	return func() tea.Msg {
		if err := svc.Load(ctx); err != nil {
			return backgroundLoadedMsg{err: err}
		}
		return backgroundLoadedMsg{
			settings:     svc.Settings(),
			style:        svc.Style(),
			effectiveURL: svc.EffectiveURL(),
		}
	}
}

func (m *BackgroundModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.background

	return func() tea.Msg {
		url, err := svc.RefreshBingWallpaper(ctx)
		return wallpaperRefreshedMsg{url: url, err: err}
	}
}
