// Package feed is the main screen: the filtered headline list with the
// detail, settings and saved overlays stacked above it.
package feed

import (
	"errors"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/blinkapp/blink/internal/flow"
	"github.com/blinkapp/blink/internal/logging"
	"github.com/blinkapp/blink/internal/news"
	"github.com/blinkapp/blink/internal/overlay"
	"github.com/blinkapp/blink/internal/prefs"
	"github.com/blinkapp/blink/internal/screen"
	"github.com/blinkapp/blink/internal/screens/detail"
	"github.com/blinkapp/blink/internal/screens/onboarding"
	"github.com/blinkapp/blink/internal/screens/saved"
	"github.com/blinkapp/blink/internal/screens/settings"
	"github.com/blinkapp/blink/internal/transition"
	"github.com/blinkapp/blink/internal/ui/components"
)

// Channel is the animator channel of the feed's overlay slides.
const Channel = "feed"

var (
	nextCategory = key.NewBinding(key.WithKeys("right", "l", "]"), key.WithHelp("←→", "category"))
	prevCategory = key.NewBinding(key.WithKeys("left", "h", "["))
	savedKey     = key.NewBinding(key.WithKeys("s", "tab"), key.WithHelp("s", "saved"))
	settingsKey  = key.NewBinding(key.WithKeys(",", "o"), key.WithHelp("o", "settings"))
	clockKey     = key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "window"))
)

// Model is the feed screen.
type Model struct {
	src   news.Source
	prefs *prefs.Preferences
	log   *slog.Logger

	bar    components.CategoryBar
	cursor int

	nav      *overlay.Navigator
	detail   *detail.Model
	settings *settings.Model
	saved    *saved.Model
	clock    *clockFlow

	anim     *transition.Animator
	duration time.Duration
	outgoing *layer

	swipe *overlay.Swipe
	now   func() time.Time
	width int
}

var (
	_ screen.Screen          = (*Model)(nil)
	_ screen.KeyHintProvider = (*Model)(nil)
	_ screen.BackHandler     = (*Model)(nil)
)

// Option configures the feed.
type Option func(*options)

type options struct {
	duration time.Duration
	curve    transition.Curve
	swipe    *overlay.SwipeConfig
	now      func() time.Time
	build    settings.BuildInfo
}

// WithDuration sets the overlay slide duration. Zero disables animation.
func WithDuration(d time.Duration) Option {
	return func(o *options) { o.duration = d }
}

// WithCurve sets the slide easing curve.
func WithCurve(c transition.Curve) Option {
	return func(o *options) { o.curve = c }
}

// WithSwipe sets the saved-panel gesture guards. Width is taken from the
// latest tea.WindowSizeMsg.
func WithSwipe(cfg overlay.SwipeConfig) Option {
	return func(o *options) { o.swipe = &cfg }
}

// WithClock replaces time.Now for gesture velocity sampling.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithBuildInfo is shown on the settings version and debug pages.
func WithBuildInfo(b settings.BuildInfo) Option {
	return func(o *options) { o.build = b }
}

// New creates the feed over src. p is shared with settings, which edits it
// in place.
func New(src news.Source, p *prefs.Preferences, log *slog.Logger, opts ...Option) *Model {
	o := options{duration: transition.DefaultDuration, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if log == nil {
		log = logging.Discard()
	}
	gesture := overlay.DefaultSwipeConfig(0)
	if o.swipe != nil {
		gesture = *o.swipe
	}
	if o.duration > 0 {
		gesture.Duration = o.duration
	}

	return &Model{
		src:      src,
		prefs:    p,
		log:      log,
		bar:      components.NewCategoryBar(news.Categories(src.News)),
		nav:      overlay.NewNavigator(overlay.WithDuration(o.duration)),
		settings: settings.New(p, log, o.build),
		saved:    saved.New(src.Saved, log),
		anim:     transition.NewAnimator(Channel, transition.NewDriver(transition.WithCurve(o.curve))),
		duration: o.duration,
		swipe:    overlay.NewSwipe(gesture),
		now:      o.now,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Title names the innermost visible layer.
func (m *Model) Title() string {
	return m.top().title(m)
}

// Category returns the selected category filter.
func (m *Model) Category() string {
	return m.bar.Current()
}

// Visible returns the headlines shown: the category filter applied, capped
// at the feed size.
func (m *Model) Visible() []news.Item {
	items := news.Filter(m.src.News, m.bar.Current())
	if n := m.prefs.FeedSize; n > 0 && len(items) > n {
		items = items[:n]
	}
	return items
}

// Cursor returns the highlighted headline.
func (m *Model) Cursor() int {
	return min(m.cursor, max(len(m.Visible())-1, 0))
}

// Navigator exposes the overlay state.
func (m *Model) Navigator() *overlay.Navigator {
	return m.nav
}

// Animating reports whether a slide is in flight.
func (m *Model) Animating() bool {
	return m.outgoing != nil || m.swipe.State() == overlay.SwipeDragging
}

// HandlesBack reports whether esc closes something inside the feed.
func (m *Model) HandlesBack() bool {
	return m.nav.Top().Kind != overlay.None || m.clock != nil
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd, ok := m.anim.Update(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.swipe.SetWidth(float64(msg.Width))
		return m, nil
	case overlay.OpenMsg:
		return m, m.open(msg.Overlay, msg.Payload)
	case overlay.CloseMsg:
		return m, m.close(msg.Overlay)
	case overlay.BackMsg:
		return m, m.back()
	case onboarding.NextMsg:
		return m, m.clockNext()
	case onboarding.BackMsg:
		return m, m.clockBack()
	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		return m, m.mouse(msg)
	}

	if m.clock != nil {
		return m, m.clock.update(m, msg)
	}

	switch m.nav.Top().Kind {
	case overlay.NewsDetail:
		return m, m.detail.Update(msg)
	case overlay.Settings:
		return m, m.settings.Update(msg, "")
	case overlay.SettingsSubScreen:
		id, _ := m.nav.SubScreenID()
		return m, m.settings.Update(msg, id)
	case overlay.SavedNews:
		return m, m.saved.Update(msg)
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		return m, m.handleKey(kmsg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	visible := m.Visible()
	switch {
	case key.Matches(msg, components.Keys.Up):
		m.cursor = max(m.Cursor()-1, 0)
	case key.Matches(msg, components.Keys.Down):
		m.cursor = min(m.Cursor()+1, max(len(visible)-1, 0))
	case key.Matches(msg, nextCategory):
		m.bar.Next()
		m.selectCategory()
	case key.Matches(msg, prevCategory):
		m.bar.Prev()
		m.selectCategory()
	case key.Matches(msg, components.Keys.Enter):
		if len(visible) > 0 {
			return m.open(overlay.Detail, visible[m.Cursor()])
		}
	case key.Matches(msg, savedKey):
		return m.open(overlay.Saved, nil)
	case key.Matches(msg, settingsKey):
		return m.open(overlay.Menu, nil)
	case key.Matches(msg, clockKey):
		return m.openClock()
	}
	return nil
}

// selectCategory applies the category bar to the feed and the saved panel.
func (m *Model) selectCategory() {
	m.cursor = 0
	m.saved.SetCategory(m.bar.Current())
	m.log.Debug("category selected", slog.String("category", m.bar.Current()))
}

// open asks the navigator for o and slides it in. Rejected requests are a
// wiring bug and only logged.
func (m *Model) open(o overlay.Overlay, payload any) tea.Cmd {
	if o.Kind == overlay.NewsDetail {
		if _, ok := payload.(news.Item); !ok {
			m.reject(o, &overlay.TransitionError{Op: "open", Active: m.nav.Top(), Requested: o})
			return nil
		}
	}
	from := m.top()
	desc, err := m.nav.Open(o, payload)
	if err != nil {
		m.reject(o, err)
		return nil
	}

	switch o.Kind {
	case overlay.NewsDetail:
		m.detail = detail.New(payload.(news.Item))
	case overlay.SettingsSubScreen:
		if !desc.IsZero() {
			m.settings.Enter(o.Sub)
		}
	}
	if desc.IsZero() {
		return nil
	}
	m.log.Info("overlay opened", slog.String("overlay", o.String()))
	return m.slide(from, desc, nil)
}

func (m *Model) close(o overlay.Overlay) tea.Cmd {
	from := m.top()
	desc, ok := m.nav.Close(o)
	if !ok {
		return nil
	}
	m.log.Info("overlay closed", slog.String("overlay", o.String()))
	if o.Kind == overlay.NewsDetail {
		m.detail = nil
	}
	return m.slide(from, desc, nil)
}

func (m *Model) back() tea.Cmd {
	if m.clock != nil {
		return m.clockBack()
	}
	from := m.top()
	closed, desc, ok := m.nav.Back()
	if !ok {
		return nil
	}
	m.log.Info("overlay closed", slog.String("overlay", closed.String()))
	if closed.Kind == overlay.NewsDetail {
		m.detail = nil
	}
	return m.slide(from, desc, nil)
}

func (m *Model) reject(o overlay.Overlay, err error) {
	var terr *overlay.TransitionError
	if errors.As(err, &terr) {
		m.log.Error("overlay transition rejected",
			slog.String("op", terr.Op),
			slog.String("active", terr.Active.String()),
			slog.String("requested", terr.Requested.String()))
		return
	}
	m.log.Error("overlay transition rejected", slog.String("requested", o.String()), slog.Any("error", err))
}

// slide animates from the layer that was on top to the current one. A
// slide that reverses one still in flight resumes from its live position.
// done runs when the slide lands, or immediately when animation is off.
func (m *Model) slide(from layer, desc transition.Descriptor, done func()) tea.Cmd {
	return m.startSlide(from, desc, done, func(finish func()) (tea.Cmd, error) {
		return m.anim.Start(desc, finish)
	})
}

// slideFrom continues a slide a gesture already moved to progress.
func (m *Model) slideFrom(from layer, desc transition.Descriptor, progress float64, done func()) tea.Cmd {
	return m.startSlide(from, desc, done, func(finish func()) (tea.Cmd, error) {
		return m.anim.StartFrom(desc, progress, finish)
	})
}

func (m *Model) startSlide(from layer, desc transition.Descriptor, done func(), start func(func()) (tea.Cmd, error)) tea.Cmd {
	finish := func() {
		m.outgoing = nil
		if done != nil {
			done()
		}
	}
	if m.duration <= 0 || desc.IsZero() {
		finish()
		return nil
	}
	m.outgoing = &from
	cmd, err := start(finish)
	if err != nil {
		finish()
		return nil
	}
	return cmd
}

// openClock starts the two-step reading window editor.
func (m *Model) openClock() tea.Cmd {
	c, err := newClockFlow(m.prefs, m.duration, m.log)
	if err != nil {
		m.log.Error("open reading window", slog.Any("error", err))
		return nil
	}
	from := m.top()
	m.clock = c
	return m.slide(from, transition.Forwards(m.duration), nil)
}

func (m *Model) clockNext() tea.Cmd {
	if m.clock == nil {
		return nil
	}
	from := m.top()
	desc, ok := m.clock.ctrl.Advance()
	if !ok {
		m.clock = nil
		desc = transition.Backwards(m.duration)
	}
	return m.slide(from, desc, nil)
}

func (m *Model) clockBack() tea.Cmd {
	if m.clock == nil {
		return nil
	}
	from := m.top()
	desc, ok := m.clock.ctrl.Retreat()
	if !ok {
		m.clock = nil
		desc = transition.Backwards(m.duration)
	}
	return m.slide(from, desc, nil)
}

// clockFlow is the start time then end time editor opened from the feed.
type clockFlow struct {
	ctrl  *flow.Controller
	pages []onboarding.Page
}

func newClockFlow(p *prefs.Preferences, d time.Duration, log *slog.Logger) (*clockFlow, error) {
	pages := []onboarding.Page{onboarding.NewStartTimePage(p), onboarding.NewEndTimePage(p)}
	ctrl, err := flow.New(len(pages), flow.WithDuration(d))
	if err != nil {
		return nil, err
	}
	ctrl.Subscribe(func(e flow.Event) {
		log.Debug("reading window step", slog.String("event", e.Kind.String()), slog.Int("step", e.Current.Index))
	})
	return &clockFlow{ctrl: ctrl, pages: pages}, nil
}

func (c *clockFlow) update(m *Model, msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, components.Keys.Close) {
		return m.clockBack()
	}
	i := c.ctrl.Current().Index
	var cmd tea.Cmd
	c.pages[i], cmd = c.pages[i].Update(msg)
	return cmd
}
