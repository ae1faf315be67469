package onboarding

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/ui/components"
	"github.com/blinkapp/blink/internal/ui/layout"
	"github.com/blinkapp/blink/internal/ui/theme"
)

// Page is one step of the wizard. Pages request navigation by returning
// commands that produce NextMsg or BackMsg.
type Page interface {
	Title() string
	Update(msg tea.Msg) (Page, tea.Cmd)
	View(width, height int) string
	KeyHints() []layout.KeyHint
}

func nextCmd() tea.Msg { return NextMsg{} }

// advance wraps fn so the button also moves the wizard on.
func advance(fn func()) func() tea.Cmd {
	return func() tea.Cmd {
		if fn != nil {
			fn()
		}
		return nextCmd
	}
}

// textPage is a heading, body copy and a row of buttons.
type textPage struct {
	title    string
	heading  string
	body     string
	footnote string
	buttons  components.ButtonRow
}

func (p *textPage) Title() string { return p.title }

func (p *textPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	var cmd tea.Cmd
	p.buttons, cmd = p.buttons.Update(msg)
	return p, cmd
}

func (p *textPage) View(width, height int) string {
	return render(width, height, p.heading, p.body, p.buttons.View(), p.footnote)
}

func (p *textPage) KeyHints() []layout.KeyHint {
	if len(p.buttons.Buttons) > 1 {
		return []layout.KeyHint{{Key: "←→", Description: "Choose"}, {Key: "Enter", Description: "Continue"}}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
}

// render stacks the non-empty sections and centers them.
func render(width, height int, heading, body string, rest ...string) string {
	cw := components.ContentWidth(width)
	sections := []string{theme.Title.Width(cw).Render(heading)}
	if body != "" {
		sections = append(sections, "", theme.Subtitle.Width(cw).Render(body))
	}
	for _, r := range rest {
		if r == "" {
			continue
		}
		sections = append(sections, "", lipgloss.PlaceHorizontal(cw, lipgloss.Center, r))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
