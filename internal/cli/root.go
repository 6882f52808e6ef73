// Package cli provides the Cobra command structure for sufftree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/sufftree/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root sufftree command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "sufftree",
		Short: "Linear-time suffix tree construction",
		Long: `sufftree builds the suffix tree of a string in time linear in its
length, using Ukkonen's on-line construction algorithm, and renders the
result for terminals or graphviz.

A terminator symbol that does not occur in the input ('$' by default) is
appended so that every suffix of the input ends at its own leaf.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
