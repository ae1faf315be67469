package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinkapp/blink/internal/transition"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, LevelInfo, cfg.Log.Level)
	assert.Equal(t, 300*time.Millisecond, cfg.Transition.Duration)
	assert.Equal(t, 0.28, cfg.Swipe.DistanceThreshold)
	assert.Equal(t, 0.5, cfg.Swipe.VelocityThreshold)
	assert.Equal(t, 8.0, cfg.Swipe.DirectionLock)
	assert.False(t, cfg.Onboarding.Skip)
}

func TestParseOverridesDefaults(t *testing.T) {
	t.Setenv("BLINK_TEST_FIXTURES", "/tmp/news.json")

	cfg, err := Parse([]byte(`
log:
  level: debug
fixtures: ${BLINK_TEST_FIXTURES}
onboarding:
  skip: true
transition:
  duration: 450ms
  curve: linear
swipe:
  distance_threshold: 0.4
`))
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, cfg.Log.Level)
	assert.NotEmpty(t, cfg.Log.File, "unset keys keep their defaults")
	assert.Equal(t, "/tmp/news.json", cfg.Fixtures)
	assert.True(t, cfg.Onboarding.Skip)
	assert.Equal(t, 450*time.Millisecond, cfg.Transition.Duration)
	assert.Equal(t, 0.4, cfg.Swipe.DistanceThreshold)
	assert.Equal(t, 0.5, cfg.Swipe.VelocityThreshold)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad level", "log:\n  level: loud\n", "log"},
		{"zero duration", "transition:\n  duration: 0s\n", "transition"},
		{"unknown curve", "transition:\n  curve: bounce\n", "transition"},
		{"threshold above one", "swipe:\n  distance_threshold: 1.5\n", "swipe"},
		{"negative lock", "swipe:\n  direction_lock: -1\n", "swipe"},
		{"not yaml", "log: [\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), "unexpected error: %v", err)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.yaml")

	cfg, err := LoadOrDefault(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadOrDefault(missing, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))
	cfg, err = LoadOrDefault(path, false)
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, cfg.Log.Level)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("BLINK_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "blink", "config.yaml"), p)

	t.Setenv("BLINK_CONFIG", "/etc/blink.yaml")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/blink.yaml", p)
}

func TestDefaultLogPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	p, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/state", "blink", "blink.log"), p)
}

func TestCurveFunc(t *testing.T) {
	c := TransitionConfig{Curve: "linear"}
	assert.Equal(t, 0.5, c.CurveFunc()(0.5))

	c = TransitionConfig{Curve: "nonsense"}
	assert.Equal(t, transition.EaseOutCubic(0.5), c.CurveFunc()(0.5))
}

func TestGesture(t *testing.T) {
	cfg := Default()
	g := cfg.Swipe.Gesture(120, time.Second)
	assert.Equal(t, 120.0, g.Width)
	assert.Equal(t, 0.28, g.DistanceThreshold)
	assert.Equal(t, time.Second, g.Duration)
}
