package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/blinkapp/blink/internal/app"
	"github.com/blinkapp/blink/internal/config"
	"github.com/blinkapp/blink/internal/logging"
	"github.com/blinkapp/blink/internal/news"
)

// runApp loads configuration, opens the log and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Close()

	src, err := loadSource(cfg.Fixtures)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Config:    cfg,
		Logger:    logger.Logger,
		Source:    src,
		Version:   displayVersion(version),
		SessionID: uuid.NewString(),
	})
}

// resolveConfig loads the config file named by --config, BLINK_CONFIG or the
// default path, then applies flag overrides.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	cfg, err := config.LoadOrDefault(path, explicit)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("fixtures"); v != "" {
		cfg.Fixtures = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Log.File = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if cmd.Flags().Lookup("skip-onboarding") != nil {
		if v, _ := cmd.Flags().GetBool("skip-onboarding"); v {
			cfg.Onboarding.Skip = true
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// loadSource returns the headlines from path, or the built-in ones.
func loadSource(path string) (news.Source, error) {
	if path == "" {
		return news.Fixtures(), nil
	}
	return news.LoadFile(path)
}
