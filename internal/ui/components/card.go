package components

import (
	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/ui/theme"
)

// ContentWidth returns the reading column width for a frame width.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-4, 20), 72)
}

// Card wraps content in a rounded border of outer width cw.
func Card(content string, cw int, selected bool) string {
	style := theme.Card
	if selected {
		style = theme.CardSelected
	}
	return style.Width(max(cw-2, 0)).Render(content)
}

// Panel centers content inside a bordered box filling width x height.
func Panel(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// RenderButton renders a button label, filled when focused.
func RenderButton(label string, focused bool) string {
	if focused {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render("  " + label)
}
