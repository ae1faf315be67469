// Package detail renders one headline in full inside a scrollable viewport.
package detail

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/news"
	"github.com/blinkapp/blink/internal/overlay"
	"github.com/blinkapp/blink/internal/ui/components"
	"github.com/blinkapp/blink/internal/ui/layout"
	"github.com/blinkapp/blink/internal/ui/theme"
)

// SourceURL is shown under every article.
const SourceURL = "https://blabla.com"

var closeKeys = key.NewBinding(key.WithKeys("esc", "left", "h"), key.WithHelp("esc", "back"))

// Model shows a single article. Esc or left asks the owner to close it.
type Model struct {
	item   news.Item
	vp     viewport.Model
	width  int
	height int
}

// New creates a detail view of item.
func New(item news.Item) *Model {
	return &Model{item: item, vp: viewport.New()}
}

// Item returns the article shown.
func (m *Model) Item() news.Item {
	return m.item
}

// Update scrolls the article.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, closeKeys) {
		return func() tea.Msg { return overlay.CloseMsg{Overlay: overlay.Detail} }
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return cmd
}

// AtTop reports whether the article is scrolled to the top.
func (m *Model) AtTop() bool {
	return m.vp.AtTop()
}

// View renders the article in width x height.
func (m *Model) View(width, height int) string {
	if width != m.width || height != m.height {
		m.resize(width, height)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, m.vp.View())
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	cw := components.ContentWidth(width)
	m.vp.SetWidth(cw)
	m.vp.SetHeight(max(height, 1))
	m.vp.SetContent(Render(m.item, cw))
}

// Render lays out item for a column of width cw.
func Render(item news.Item, cw int) string {
	wrap := lipgloss.NewStyle().Width(cw)
	sections := []string{
		theme.Meta.Render(strings.ToUpper(item.Category)),
		"",
		wrap.Inherit(theme.Headline).Render(item.Headline),
		theme.Meta.Render("📄 " + item.Category + "  ·  " + item.Timestamp),
		"",
		wrap.Inherit(theme.Body).Render(item.Snippet),
		"",
		theme.Meta.Render("Source: ") + lipgloss.NewStyle().Foreground(theme.Accent).Render(SourceURL),
	}
	return strings.Join(sections, "\n")
}

// KeyHints lists the detail bindings.
func KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}
