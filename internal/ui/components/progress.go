package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/ui/theme"
)

// ProgressBar is a thin horizontal bar filled to Ratio.
type ProgressBar struct {
	Ratio     float64
	Width     int
	ShowSteps bool
	Step      int
	Total     int
}

// NewProgressBar creates a progress bar for step (0-based) of total.
func NewProgressBar(step, total, width int) ProgressBar {
	ratio := 0.0
	if total > 0 {
		ratio = float64(step+1) / float64(total)
	}
	return ProgressBar{
		Ratio:     ratio,
		Width:     width,
		ShowSteps: true,
		Step:      step,
		Total:     total,
	}
}

// Filled returns the number of filled cells for a bar of barWidth.
func (p ProgressBar) Filled(barWidth int) int {
	filled := int(float64(barWidth)*p.Ratio + 0.5)
	return min(max(filled, 0), barWidth)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	suffix := ""
	if p.ShowSteps && p.Total > 0 {
		suffix = fmt.Sprintf("  %d/%d", p.Step+1, p.Total)
	}

	barWidth := max(p.Width-lipgloss.Width(suffix), 4)
	filled := p.Filled(barWidth)

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if suffix != "" {
		bar += lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
	}
	return bar
}
