// Package config loads Blink's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/blinkapp/blink/internal/overlay"
	"github.com/blinkapp/blink/internal/transition"
)

// Log levels.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config is the application configuration.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Fixtures   string           `yaml:"fixtures"`
	Onboarding OnboardingConfig `yaml:"onboarding"`
	Transition TransitionConfig `yaml:"transition"`
	Swipe      SwipeConfig      `yaml:"swipe"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Transition.Validate(); err != nil {
		return fmt.Errorf("transition: %w", err)
	}
	if err := c.Swipe.Validate(); err != nil {
		return fmt.Errorf("swipe: %w", err)
	}
	return nil
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.In(LevelDebug, LevelInfo, LevelWarn, LevelError)),
		validation.Field(&c.File, validation.Required),
	)
}

// OnboardingConfig controls the first-run wizard.
type OnboardingConfig struct {
	Skip bool `yaml:"skip"`
}

// TransitionConfig controls screen slides.
type TransitionConfig struct {
	Duration time.Duration `yaml:"duration"`
	Curve    string        `yaml:"curve"`
}

// Validate validates the transition configuration.
func (c *TransitionConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Duration, validation.Required, validation.Min(time.Millisecond), validation.Max(5*time.Second)),
		validation.Field(&c.Curve, validation.By(func(v any) error {
			_, err := transition.CurveByName(v.(string))
			return err
		})),
	)
}

// CurveFunc resolves the configured curve.
func (c *TransitionConfig) CurveFunc() transition.Curve {
	curve, err := transition.CurveByName(c.Curve)
	if err != nil {
		return transition.EaseOutCubic
	}
	return curve
}

// SwipeConfig holds the feed/saved gesture guards.
type SwipeConfig struct {
	DistanceThreshold float64 `yaml:"distance_threshold"`
	VelocityThreshold float64 `yaml:"velocity_threshold"`
	DirectionLock     float64 `yaml:"direction_lock"`
}

// Validate validates the swipe configuration.
func (c *SwipeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DistanceThreshold, validation.Required, validation.Min(0.01), validation.Max(1.0)),
		validation.Field(&c.VelocityThreshold, validation.Required, validation.Min(0.0)),
		validation.Field(&c.DirectionLock, validation.Min(0.0)),
	)
}

// Gesture converts the guards for a viewport width.
func (c *SwipeConfig) Gesture(width float64, d time.Duration) overlay.SwipeConfig {
	return overlay.SwipeConfig{
		Width:             width,
		DistanceThreshold: c.DistanceThreshold,
		VelocityThreshold: c.VelocityThreshold,
		DirectionLock:     c.DirectionLock,
		Duration:          d,
	}
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	logPath, err := DefaultLogPath()
	if err != nil {
		logPath = "blink.log"
	}
	return &Config{
		Log: LogConfig{
			Level: LevelInfo,
			File:  logPath,
		},
		Transition: TransitionConfig{
			Duration: transition.DefaultDuration,
			Curve:    "ease-out",
		},
		Swipe: SwipeConfig{
			DistanceThreshold: overlay.DefaultDistanceThreshold,
			VelocityThreshold: overlay.DefaultVelocityThreshold,
			DirectionLock:     overlay.DefaultDirectionLock,
		},
	}
}

// Load reads path over the defaults. ${VAR} references are expanded from
// the environment before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path. When path is the implicit default location and
// the file does not exist, the defaults are returned instead of an error.
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !explicit {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath returns $BLINK_CONFIG, or config.yaml under the XDG config
// directory.
func DefaultPath() (string, error) {
	if p := os.Getenv("BLINK_CONFIG"); p != "" {
		return p, nil
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "blink", "config.yaml"), nil
}

// DefaultLogPath returns blink.log under the XDG state directory.
func DefaultLogPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "blink", "blink.log"), nil
}
