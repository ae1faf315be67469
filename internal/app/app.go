// Package app is the root Bubble Tea model: the screen router plus the
// header and footer frame around it.
package app

import (
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/blinkapp/blink/internal/config"
	"github.com/blinkapp/blink/internal/logging"
	"github.com/blinkapp/blink/internal/news"
	"github.com/blinkapp/blink/internal/prefs"
	"github.com/blinkapp/blink/internal/router"
	"github.com/blinkapp/blink/internal/screen"
	"github.com/blinkapp/blink/internal/screens/feed"
	"github.com/blinkapp/blink/internal/screens/onboarding"
	"github.com/blinkapp/blink/internal/screens/settings"
	"github.com/blinkapp/blink/internal/screens/welcome"
	"github.com/blinkapp/blink/internal/ui/components"
	"github.com/blinkapp/blink/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Config    *config.Config
	Logger    *slog.Logger
	Source    news.Source
	Version   string
	SessionID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	prefs  *prefs.Preferences
	log    *slog.Logger
	width  int
	height int
}

// NewModel creates the root model starting at the welcome splash.
func NewModel(opts Options) AppModel {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	m := AppModel{
		opts:  opts,
		prefs: prefs.Default(),
		log:   opts.Logger,
	}
	next := m.newOnboarding
	if opts.Config.Onboarding.Skip {
		next = m.newFeed
	}
	m.router = router.New(welcome.New(next),
		router.WithDuration(opts.Config.Transition.Duration),
		router.WithCurve(opts.Config.Transition.CurveFunc()))
	return m
}

// Preferences returns the reader's in-memory choices.
func (m AppModel) Preferences() *prefs.Preferences {
	return m.prefs
}

// Active returns the screen on top of the router.
func (m AppModel) Active() screen.Screen {
	return m.router.Active()
}

func (m AppModel) newOnboarding() screen.Screen {
	t := m.opts.Config.Transition
	w, err := onboarding.New(m.prefs, m.log,
		onboarding.WithDuration(t.Duration),
		onboarding.WithCurve(t.CurveFunc()))
	if err != nil {
		m.log.Error("onboarding unavailable", slog.Any("error", err))
		return m.newFeed()
	}
	return w
}

func (m AppModel) newFeed() screen.Screen {
	cfg := m.opts.Config
	return feed.New(m.opts.Source, m.prefs, m.log,
		feed.WithDuration(cfg.Transition.Duration),
		feed.WithCurve(cfg.Transition.CurveFunc()),
		feed.WithSwipe(cfg.Swipe.Gesture(0, cfg.Transition.Duration)),
		feed.WithBuildInfo(settings.BuildInfo{
			Version:   m.opts.Version,
			SessionID: m.opts.SessionID,
			LogFile:   cfg.Log.File,
		}))
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(msg)

	case tea.KeyPressMsg:
		if key.Matches(msg, components.Keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, components.Keys.Close) && !m.activeHandlesBack() {
			if m.router.Depth() > 1 {
				return m, m.router.Pop()
			}
			return m, nil
		}

	case onboarding.DoneMsg:
		m.log.Info("onboarding complete",
			slog.String("window", m.prefs.Window()),
			slog.Int("feed_size", m.prefs.FeedSize),
			slog.Any("categories", m.prefs.Categories),
			slog.String("referral", m.prefs.Referral),
			slog.Bool("notifications", m.prefs.Notifications))
		return m, m.router.Replace(m.newFeed())

	case settings.RestartOnboardingMsg:
		m.log.Info("onboarding restarted")
		*m.prefs = *prefs.Default()
		return m, m.router.Replace(m.newOnboarding())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) activeHandlesBack() bool {
	bh, ok := m.router.Active().(screen.BackHandler)
	return ok && bh.HandlesBack()
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// render draws the framed active screen for the current window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.prefs.Window(), m.width)

	var hints []layout.KeyHint
	if kh, ok := active.(screen.KeyHintProvider); ok {
		hints = kh.KeyHints()
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := NewModel(opts)
	m.log.Info("blink started",
		slog.String("session", opts.SessionID),
		slog.String("version", opts.Version),
		slog.Int("headlines", len(opts.Source.News)))

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	m.log.Info("blink stopped", slog.String("session", opts.SessionID))
	return nil
}
