package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blink",
	Short: "A daily news digest for the terminal",
	Long:  "Blink: a short daily digest of the headlines that matter, inside a reading window you choose.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (overrides BLINK_CONFIG env var)")
	flags.String("fixtures", "", "Path to a JSON headlines file (default: built-in headlines)")
	flags.String("log-file", "", "Path to the log file")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.Flags().Bool("skip-onboarding", false, "Start at the feed instead of the onboarding wizard")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fixturesCmd)
}

// loadDotEnv reads .env from the working directory when there is one.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
