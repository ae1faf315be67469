package components

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/blinkapp/blink/internal/ui/theme"
)

// CategoryBar is a horizontal row of category chips with one selected.
type CategoryBar struct {
	Categories []string
	Selected   int
}

// NewCategoryBar creates a bar selecting the first category.
func NewCategoryBar(categories []string) CategoryBar {
	return CategoryBar{Categories: categories}
}

// Current returns the selected category, or "" for an empty bar.
func (c CategoryBar) Current() string {
	if c.Selected < 0 || c.Selected >= len(c.Categories) {
		return ""
	}
	return c.Categories[c.Selected]
}

// Next selects the following category, wrapping around.
func (c *CategoryBar) Next() {
	if len(c.Categories) == 0 {
		return
	}
	c.Selected = (c.Selected + 1) % len(c.Categories)
}

// Prev selects the preceding category, wrapping around.
func (c *CategoryBar) Prev() {
	if len(c.Categories) == 0 {
		return
	}
	c.Selected = (c.Selected - 1 + len(c.Categories)) % len(c.Categories)
}

// Select selects category by name and reports whether it exists.
func (c *CategoryBar) Select(category string) bool {
	for i, cat := range c.Categories {
		if cat == category {
			c.Selected = i
			return true
		}
	}
	return false
}

// View renders the chips, truncated to width.
func (c CategoryBar) View(width int) string {
	chips := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		if i == c.Selected {
			chips[i] = theme.ChipActive.Render(cat)
		} else {
			chips[i] = theme.ChipInactive.Render(cat)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	if width > 0 && ansi.StringWidth(row) > width {
		row = ansi.Truncate(row, width-1, "") + "…"
	}
	return row
}
