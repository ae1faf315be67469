// Package welcome is the launch splash: a twinkling star, then the Blink
// wordmark.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/router"
	"github.com/blinkapp/blink/internal/screen"
	"github.com/blinkapp/blink/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// Tagline is shown under the wordmark.
const Tagline = "No doomscroll. Just the news that matters."

const starArt = `    ╱╲
 ╲╱    ╲╱
 ╱╲    ╱╲
    ╲╱`

// twinkle frames alternate beside the star.
var twinkleFrames = []string{"✦", "·"}

type tickMsg time.Time

// WelcomeScreen shows the splash and then replaces itself with the screen
// produced by next.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands over to the screen produced by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg, tea.MouseClickMsg:
		// Any input skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	star := lipgloss.NewStyle().Foreground(theme.Accent).Render(starArt)
	if w.elapsed >= phase1End {
		frame := twinkleFrames[w.tickCount%len(twinkleFrames)]
		spark := lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame)
		lines := strings.Split(star, "\n")
		if len(lines) > 2 {
			lines[1] = spark + " " + lines[1]
			lines[2] = lines[2] + " " + spark
		}
		star = strings.Join(lines, "\n")
	}
	sections = append(sections, star)

	if w.elapsed >= phase2End {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline)
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
