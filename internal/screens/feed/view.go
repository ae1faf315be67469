package feed

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/overlay"
	"github.com/blinkapp/blink/internal/screens/detail"
	"github.com/blinkapp/blink/internal/ui/components"
	"github.com/blinkapp/blink/internal/ui/layout"
	"github.com/blinkapp/blink/internal/ui/theme"
)

const cardRows = 6

func (m *Model) View(width, height int) string {
	if m.swipe.State() == overlay.SwipeDragging {
		p := m.swipe.Progress()
		return components.Slide(
			m.render(layer{kind: feedLayer}, width, height),
			m.render(layer{kind: savedLayer}, width, height),
			width, height, p, 1+p)
	}

	current := m.render(m.top(), width, height)
	if m.outgoing == nil || !m.anim.Active() {
		return current
	}
	out, in := m.anim.Driver().Offsets()
	return components.Slide(m.render(*m.outgoing, width, height), current, width, height, out, in)
}

func (m *Model) viewFeed(width, height int) string {
	cw := components.ContentWidth(width)
	bar := m.bar.View(cw)
	visible := m.Visible()

	if len(visible) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			theme.Headline.Render("Nothing here yet"),
			theme.Meta.Render(fmt.Sprintf("No headlines in %s today", m.bar.Current())),
		)
		body := lipgloss.Place(cw, max(height-2, 1), lipgloss.Center, lipgloss.Center, empty)
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, bar, "", body))
	}

	cursor := m.Cursor()
	used := 4
	start := max(cursor-max((height-used)/cardRows, 1)+1, 0)
	cards := make([]string, 0, len(visible))
	for i := start; i < len(visible); i++ {
		it := visible[i]
		head := theme.Headline.Render(it.Headline)
		meta := theme.Meta.Render("📄 "+it.Category) + "  " + theme.Meta.Render(it.Timestamp)
		snippet := lipgloss.NewStyle().Width(max(cw-4, 10)).Foreground(theme.Text).Render(clip(it.Snippet, cw-4, 2))
		card := components.Card(strings.Join([]string{head, meta, snippet}, "\n"), cw, i == cursor)
		h := lipgloss.Height(card)
		if used+h > height && i > start {
			break
		}
		used += h
		cards = append(cards, card)
	}

	count := theme.Hint.Render(fmt.Sprintf("%d of %d headlines · window %s", len(visible), len(m.src.News), m.prefs.Window()))
	sections := append([]string{bar, ""}, cards...)
	sections = append(sections, count)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// clip cuts s to roughly n lines of width w.
func clip(s string, w, n int) string {
	limit := max(w*n-1, 1)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "…"
}

// KeyHints lists the bindings of the innermost layer.
func (m *Model) KeyHints() []layout.KeyHint {
	l := m.top()
	switch l.kind {
	case clockLayer:
		return append(l.clock.pages[l.step].KeyHints(), layout.KeyHint{Key: "Esc", Description: "Back"})
	case detailLayer:
		return detail.KeyHints()
	case savedLayer:
		return m.saved.KeyHints()
	case menuLayer:
		return m.settings.KeyHints("")
	case subLayer:
		return m.settings.KeyHints(l.sub)
	}
	hints := layout.HintsFromBindings(components.Keys.Up, nextCategory)
	hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Read"})
	return append(hints, layout.HintsFromBindings(savedKey, settingsKey, clockKey)...)
}
