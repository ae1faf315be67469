package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗     ██╗███╗   ██╗██╗  ██╗
 ██╔══██╗██║     ██║████╗  ██║██║ ██╔╝
 ██████╔╝██║     ██║██╔██╗ ██║█████╔╝
 ██╔══██╗██║     ██║██║╚██╗██║██╔═██╗
 ██████╔╝███████╗██║██║ ╚████║██║  ██╗
 ╚═════╝ ╚══════╝╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝`

const bannerCompact = "B L I N K"

// RenderBanner returns the BLINK wordmark in the primary color, or a
// compact fallback below 42 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 42 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
