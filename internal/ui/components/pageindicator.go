package components

import (
	"strings"

	"github.com/blinkapp/blink/internal/ui/theme"
)

// PageIndicator renders one dot per page with the current page highlighted.
func PageIndicator(current, total int) string {
	if total <= 0 {
		return ""
	}
	dots := make([]string, total)
	for i := range dots {
		if i == current {
			dots[i] = theme.DotActive.Render("●")
		} else {
			dots[i] = theme.DotInactive.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
