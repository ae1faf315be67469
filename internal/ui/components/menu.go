package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	ID       string
	Label    string
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu that scrolls to keep the selection
// visible.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Current returns the selected item.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, Keys.Down):
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, Keys.Enter):
		if item, ok := m.Current(); ok && item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders at most height rows of the menu. A height of zero or less
// renders every item.
func (m Menu) View(height int) string {
	start, end := 0, len(m.Items)
	if height > 0 && len(m.Items) > height {
		start = max(m.Selected-height/2, 0)
		end = start + height
		if end > len(m.Items) {
			end = len(m.Items)
			start = end - height
		}
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := m.Items[i]
		switch {
		case i == m.Selected:
			lines = append(lines, theme.Selected.Render("  ▸ "+item.Label)+detail(item))
		case item.Disabled:
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+item.Label))
		default:
			lines = append(lines, theme.Unselected.Render("    "+item.Label)+detail(item))
		}
	}
	return strings.Join(lines, "\n")
}

func detail(item MenuItem) string {
	if item.Detail == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + item.Detail)
}
