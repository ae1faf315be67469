package app

import (
	"bytes"
	"log/slog"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinkapp/blink/internal/config"
	"github.com/blinkapp/blink/internal/news"
	"github.com/blinkapp/blink/internal/overlay"
	"github.com/blinkapp/blink/internal/router"
	"github.com/blinkapp/blink/internal/screens/feed"
	"github.com/blinkapp/blink/internal/screens/onboarding"
	"github.com/blinkapp/blink/internal/screens/settings"
	"github.com/blinkapp/blink/internal/screens/welcome"
)

func newTestApp(t *testing.T, skip bool) (AppModel, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Transition.Duration = 0
	cfg.Onboarding.Skip = skip
	var buf bytes.Buffer
	m := NewModel(Options{
		Config:    cfg,
		Logger:    slog.New(slog.NewJSONHandler(&buf, nil)),
		Source:    news.Fixtures(),
		Version:   "1.0.0",
		SessionID: "test-session",
	})
	return m, &buf
}

// update runs msg through m and executes the resulting command once,
// feeding a router message back in.
func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.ReplaceScreenMsg, router.PopScreenMsg, onboarding.DoneMsg, onboarding.NextMsg,
		overlay.OpenMsg, overlay.CloseMsg, settings.RestartOnboardingMsg:
		return update(t, m, out)
	}
	return m
}

func TestStartsAtWelcome(t *testing.T) {
	m, _ := newTestApp(t, false)
	_, ok := m.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok)

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	_, ok = m.Active().(*onboarding.Wizard)
	assert.True(t, ok, "welcome hands over to onboarding, got %T", m.Active())
}

func TestSkipOnboarding(t *testing.T) {
	m, _ := newTestApp(t, true)
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	_, ok := m.Active().(*feed.Model)
	assert.True(t, ok, "got %T", m.Active())
}

func TestOnboardingDoneShowsFeed(t *testing.T) {
	m, buf := newTestApp(t, false)
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = update(t, m, onboarding.DoneMsg{})

	_, ok := m.Active().(*feed.Model)
	require.True(t, ok, "got %T", m.Active())
	assert.Contains(t, buf.String(), "onboarding complete")
}

func TestEscGoesToScreenFirst(t *testing.T) {
	m, _ := newTestApp(t, true)
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	f := m.Active().(*feed.Model)

	m = update(t, m, tea.KeyPressMsg{Code: 's', Text: "s"})
	require.True(t, f.Navigator().IsOpen(overlay.Saved))

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEsc})
	assert.False(t, f.Navigator().IsOpen(overlay.Saved))
	assert.Same(t, f, m.Active())
}

func TestRestartOnboardingResetsPreferences(t *testing.T) {
	m, _ := newTestApp(t, true)
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NoError(t, m.Preferences().SetFeedSize(12))

	m = update(t, m, settings.RestartOnboardingMsg{})
	_, ok := m.Active().(*onboarding.Wizard)
	assert.True(t, ok, "got %T", m.Active())
	assert.Equal(t, 3, m.Preferences().FeedSize)
}

func TestQuit(t *testing.T) {
	m, _ := newTestApp(t, true)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewFrame(t *testing.T) {
	m, _ := newTestApp(t, true)
	v := m.View()
	assert.True(t, v.AltScreen)
	assert.Equal(t, tea.MouseModeCellMotion, v.MouseMode)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	content := m.render()
	assert.Contains(t, content, "Blink")
	assert.Contains(t, content, "Headlines")
	assert.Contains(t, content, "09:41–18:00")
	assert.Contains(t, content, "Quit")

	m = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.NotContains(t, m.render(), "Headlines")
}
