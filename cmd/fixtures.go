package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blinkapp/blink/internal/news"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Inspect headline fixture files",
}

var fixturesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a headlines file against the fixtures schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := news.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d headlines, %d saved, %d categories)\n",
			args[0], len(src.News), len(src.Saved), len(news.Categories(src.News))-1)
		return nil
	},
}

var fixturesDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the built-in headlines in the fixtures format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := news.Marshal(news.Fixtures())
		if err != nil {
			return fmt.Errorf("marshal fixtures: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	fixturesCmd.AddCommand(fixturesValidateCmd)
	fixturesCmd.AddCommand(fixturesDumpCmd)
}
