package tui

import (
	"fmt"
	"strings"

	"github.com/Theworld7/VisiFind/models"
)

// bookmarkList is the filtered view over the loaded bookmarks. The filter
// matches case-insensitively on name, URL, group and description.
type bookmarkList struct {
	all     []models.Bookmark
	visible []models.Bookmark
	filter  string
	idx     int
}

func (l *bookmarkList) setItems(items []models.Bookmark) {
	l.all = items
	l.apply()
}

func (l *bookmarkList) setFilter(filter string) {
	if filter == l.filter {
		return
	}
	l.filter = filter
	l.idx = 0
	l.apply()
}

func (l *bookmarkList) apply() {
	needle := strings.ToLower(strings.TrimSpace(l.filter))
	l.visible = l.visible[:0]
	for _, b := range l.all {
		if needle == "" || bookmarkMatches(b, needle) {
			l.visible = append(l.visible, b)
		}
	}
	if l.idx >= len(l.visible) {
		l.idx = max(len(l.visible)-1, 0)
	}
}

func bookmarkMatches(b models.Bookmark, needle string) bool {
	for _, field := range []string{b.Name, b.URL, b.Group, b.Description} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (l *bookmarkList) move(delta int) {
	next := l.idx + delta
	if next < 0 || next >= len(l.visible) {
		return
	}
	l.idx = next
}

func (l *bookmarkList) current() (models.Bookmark, bool) {
	if len(l.visible) == 0 || l.idx < 0 || l.idx >= len(l.visible) {
		return models.Bookmark{}, false
	}
	return l.visible[l.idx], true
}

func (l *bookmarkList) View() string {
	if len(l.visible) == 0 {
		if len(l.all) == 0 {
			return "No bookmarks yet"
		}
		return "No bookmarks match, enter searches the web"
	}

	var b strings.Builder
	b.WriteString("#    │ Name                     │ Group        │ URL\n")
	b.WriteString("─────┼──────────────────────────┼──────────────┼──────────────────────────────\n")
	for i, item := range l.visible {
		cursor := " "
		if i == l.idx {
			cursor = ">"
		}
		line := fmt.Sprintf(
			"%s %-3d│ %-24s │ %-12s │ %s",
			cursor,
			i+1,
			fitText(item.Name, 24),
			fitText(valueOrDash(item.Group), 12),
			fitText(item.URL, 40),
		)
		if i == l.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
