// Package onboarding is the first-run wizard: a fixed sequence of pages
// walked forwards and backwards by a flow.Controller.
package onboarding

import (
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/flow"
	"github.com/blinkapp/blink/internal/logging"
	"github.com/blinkapp/blink/internal/prefs"
	"github.com/blinkapp/blink/internal/screen"
	"github.com/blinkapp/blink/internal/transition"
	"github.com/blinkapp/blink/internal/ui/components"
	"github.com/blinkapp/blink/internal/ui/layout"
)

// Channel is the animation channel of page slides.
const Channel = "onboarding"

// chromeHeight is the progress bar and page indicator above each page.
const chromeHeight = 3

// Wizard hosts the onboarding pages.
type Wizard struct {
	pages     []Page
	flow      *flow.Controller
	anim      *transition.Animator
	log       *slog.Logger
	outgoing  int
	completed bool
}

var _ screen.Screen = (*Wizard)(nil)

// Option configures a Wizard.
type Option func(*options)

type options struct {
	duration time.Duration
	curve    transition.Curve
	pages    []Page
	custom   bool
}

// WithDuration sets the page slide duration. Zero disables animation.
func WithDuration(d time.Duration) Option {
	return func(o *options) { o.duration = d }
}

// WithCurve sets the page slide easing curve.
func WithCurve(c transition.Curve) Option {
	return func(o *options) { o.curve = c }
}

// WithPages replaces the default pages.
func WithPages(pages ...Page) Option {
	return func(o *options) {
		o.pages = pages
		o.custom = true
	}
}

// New creates a wizard writing the reader's choices to p.
func New(p *prefs.Preferences, log *slog.Logger, opts ...Option) (*Wizard, error) {
	o := options{duration: transition.DefaultDuration, curve: transition.EaseOutCubic}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.custom {
		o.pages = Pages(p)
	}
	if log == nil {
		log = logging.Discard()
	}

	ctrl, err := flow.New(len(o.pages), flow.WithDuration(o.duration))
	if err != nil {
		return nil, err
	}

	w := &Wizard{
		pages:    o.pages,
		flow:     ctrl,
		anim:     transition.NewAnimator(Channel, transition.NewDriver(transition.WithCurve(o.curve))),
		log:      log,
		outgoing: -1,
	}
	ctrl.Subscribe(w.observe)
	return w, nil
}

func (w *Wizard) observe(ev flow.Event) {
	w.log.Debug("onboarding step",
		slog.String("event", ev.Kind.String()),
		slog.Int("step", ev.Current.Index),
		slog.Int("previous", ev.Previous.Index))
	if ev.Kind == flow.EventComplete {
		w.completed = true
		w.log.Info("onboarding complete", slog.Int("steps", ev.Current.Total))
	}
}

func (w *Wizard) Init() tea.Cmd {
	return nil
}

func (w *Wizard) Title() string {
	return w.page().Title()
}

// Step returns the current step.
func (w *Wizard) Step() flow.Step {
	return w.flow.Current()
}

// Completed reports whether the reader has continued past the last page.
func (w *Wizard) Completed() bool {
	return w.completed
}

// HandlesBack reports whether esc goes back a page.
func (w *Wizard) HandlesBack() bool {
	return !w.flow.Current().IsFirst()
}

func (w *Wizard) page() Page {
	return w.pages[w.flow.Current().Index]
}

func (w *Wizard) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd, ok := w.anim.Update(msg); ok {
		return w, cmd
	}

	switch msg := msg.(type) {
	case NextMsg:
		return w, w.next()
	case BackMsg:
		return w, w.back()
	case tea.KeyPressMsg:
		if key.Matches(msg, components.Keys.Back) {
			return w, w.back()
		}
	}

	i := w.flow.Current().Index
	page, cmd := w.pages[i].Update(msg)
	w.pages[i] = page
	return w, cmd
}

func (w *Wizard) next() tea.Cmd {
	desc, ok := w.flow.Advance()
	if !ok {
		if w.completed {
			return func() tea.Msg { return DoneMsg{} }
		}
		return nil
	}
	return w.slide(desc)
}

func (w *Wizard) back() tea.Cmd {
	desc, ok := w.flow.Retreat()
	if !ok {
		return nil
	}
	return w.slide(desc)
}

func (w *Wizard) slide(desc transition.Descriptor) tea.Cmd {
	w.outgoing = w.flow.Previous().Index
	cmd, err := w.anim.Start(desc, func() { w.outgoing = -1 })
	if err != nil {
		w.outgoing = -1
		return nil
	}
	return cmd
}

// Animating reports whether a page slide is in flight.
func (w *Wizard) Animating() bool {
	return w.outgoing >= 0 && w.anim.Active()
}

func (w *Wizard) View(width, height int) string {
	step := w.flow.Current()
	cw := components.ContentWidth(width)

	progress := components.NewProgressBar(step.Index, step.Total, cw)
	progress.Ratio = w.flow.CompletionRatio()
	chrome := lipgloss.JoinVertical(lipgloss.Center,
		progress.View(),
		"",
		components.PageIndicator(step.Index, step.Total),
	)
	chrome = lipgloss.PlaceHorizontal(width, lipgloss.Center, chrome)

	bodyHeight := max(height-chromeHeight, 0)
	body := w.page().View(width, bodyHeight)
	if w.Animating() {
		out, in := w.anim.Driver().Offsets()
		body = components.Slide(w.pages[w.outgoing].View(width, bodyHeight), body, width, bodyHeight, out, in)
	}
	return chrome + "\n" + body
}

func (w *Wizard) KeyHints() []layout.KeyHint {
	hints := w.page().KeyHints()
	if !w.flow.Current().IsFirst() {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return hints
}
