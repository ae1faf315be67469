package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "blink", displayVersion(version))
	},
}

// displayVersion canonicalizes release versions, with or without the
// leading v. Anything else is a development build and is shown unchanged.
func displayVersion(v string) string {
	if semver.IsValid(v) {
		return semver.Canonical(v)
	}
	if semver.IsValid("v" + v) {
		return semver.Canonical("v" + v)
	}
	return v
}
