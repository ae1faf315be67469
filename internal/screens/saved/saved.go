// Package saved is the saved-articles panel. It opens articles inline
// rather than through the feed's overlay navigator, so reading a saved
// article never conflicts with the panel itself being open.
package saved

import (
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/logging"
	"github.com/blinkapp/blink/internal/news"
	"github.com/blinkapp/blink/internal/overlay"
	"github.com/blinkapp/blink/internal/screens/detail"
	"github.com/blinkapp/blink/internal/ui/components"
	"github.com/blinkapp/blink/internal/ui/layout"
	"github.com/blinkapp/blink/internal/ui/theme"
)

var (
	bookmarkKey = key.NewBinding(key.WithKeys("b", "space"), key.WithHelp("b", "bookmark"))
	closeKey    = key.NewBinding(key.WithKeys("esc", "right", "l"), key.WithHelp("esc/→", "feed"))
	backKey     = key.NewBinding(key.WithKeys("esc", "left", "h"))
)

// Model is the saved list plus an optional inline detail.
type Model struct {
	items     []news.SavedItem
	category  string
	bookmarks map[string]bool
	cursor    int
	detail    *detail.Model
	log       *slog.Logger
}

// New creates the panel. Every item starts bookmarked.
func New(items []news.SavedItem, log *slog.Logger) *Model {
	if log == nil {
		log = logging.Discard()
	}
	bm := make(map[string]bool, len(items))
	for _, it := range items {
		bm[it.ID] = true
	}
	return &Model{items: items, category: news.AllCategories, bookmarks: bm, log: log}
}

// SetCategory filters the list to category, following the feed's category
// bar. The cursor returns to the top when the filter changes.
func (m *Model) SetCategory(category string) {
	if category == m.category {
		return
	}
	m.category = category
	m.cursor = 0
}

// Category returns the active filter.
func (m *Model) Category() string {
	return m.category
}

// Visible returns the saved items in the active category.
func (m *Model) Visible() []news.SavedItem {
	return news.FilterSaved(m.items, m.category)
}

// Bookmarked reports whether the item with id is bookmarked.
func (m *Model) Bookmarked(id string) bool {
	return m.bookmarks[id]
}

// Cursor returns the highlighted row.
func (m *Model) Cursor() int {
	return m.cursor
}

// Reading returns the article open inline, if any.
func (m *Model) Reading() (news.Item, bool) {
	if m.detail == nil {
		return news.Item{}, false
	}
	return m.detail.Item(), true
}

// Update handles list navigation and the inline detail.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.detail != nil {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, backKey) {
			m.detail = nil
			return nil
		}
		return m.detail.Update(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		visible := m.Visible()
		switch {
		case key.Matches(msg, components.Keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, components.Keys.Down):
			m.cursor = min(m.cursor+1, max(len(visible)-1, 0))
		case key.Matches(msg, bookmarkKey):
			m.toggle(visible)
		case key.Matches(msg, components.Keys.Enter):
			if m.cursor < len(visible) {
				m.detail = detail.New(visible[m.cursor].Item)
			}
		case key.Matches(msg, closeKey):
			return func() tea.Msg { return overlay.CloseMsg{Overlay: overlay.Saved} }
		}
	}
	return nil
}

func (m *Model) toggle(visible []news.SavedItem) {
	if m.cursor >= len(visible) {
		return
	}
	id := visible[m.cursor].ID
	m.bookmarks[id] = !m.bookmarks[id]
	m.log.Debug("bookmark toggled", slog.String("id", id), slog.Bool("bookmarked", m.bookmarks[id]))
}

// View renders the list or the inline detail.
func (m *Model) View(width, height int) string {
	if m.detail != nil {
		return m.detail.View(width, height)
	}

	cw := components.ContentWidth(width)
	heading := "Saved"
	if m.category != news.AllCategories {
		heading += " · " + m.category
	}
	title := theme.Title.Width(cw).Render(heading)
	visible := m.Visible()

	if len(visible) == 0 {
		hint := "Articles you bookmark will appear here"
		if m.category != news.AllCategories && len(m.items) > 0 {
			hint = "Nothing saved in " + m.category
		}
		empty := lipgloss.JoinVertical(lipgloss.Center,
			title, "", "📚",
			theme.Headline.Render("No Saved Articles"),
			theme.Meta.Render(hint),
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	cards := make([]string, 0, len(visible))
	used := 2
	start := m.firstVisible(height - used)
	for i := start; i < len(visible); i++ {
		card := m.card(visible[i], i == m.cursor, cw)
		h := lipgloss.Height(card)
		if used+h > height && i > start {
			break
		}
		cards = append(cards, card)
		used += h
	}
	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{title, ""}, cards...)...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

// firstVisible scrolls so the cursor's card fits in rows.
func (m *Model) firstVisible(rows int) int {
	const cardRows = 6
	perPage := max(rows/cardRows, 1)
	return max(m.cursor-perPage+1, 0)
}

func (m *Model) card(it news.SavedItem, selected bool, cw int) string {
	icon := "☆"
	if m.bookmarks[it.ID] {
		icon = "★"
	}
	head := theme.Headline.Render(it.Headline)
	meta := theme.Meta.Render("📄 "+it.Category) + "  " + theme.Meta.Render(it.SavedDate)
	snippet := lipgloss.NewStyle().Width(max(cw-4, 10)).Foreground(theme.Text).Render(truncateLines(it.Snippet, cw-4, 2))
	content := strings.Join([]string{icon + " " + head, meta, snippet}, "\n")
	return components.Card(content, cw, selected)
}

// truncateLines cuts s to roughly n lines of width w.
func truncateLines(s string, w, n int) string {
	limit := max(w*n-1, 1)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "…"
}

// KeyHints lists the bindings for the current mode.
func (m *Model) KeyHints() []layout.KeyHint {
	if m.detail != nil {
		return detail.KeyHints()
	}
	hints := layout.HintsFromBindings(components.Keys.Up, components.Keys.Down, bookmarkKey)
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Read"},
		layout.KeyHint{Key: "Esc/→", Description: "Feed"},
	)
}
