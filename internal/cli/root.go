// Package cli provides the Cobra command structure for callshift.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/callshift/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root callshift command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "callshift",
		Short: "A safe, type-aware call-pattern migrator for Go source",
		Long: `callshift migrates configured legacy call patterns in Go source to a
fluent two-step form, e.g. AssertEqual(got, want) to verify.That(got).IsEqualTo(want).

Matching is type-aware: a call is rewritten only when its declaring symbol
resolves into the configured package allow-list, so same-named methods
elsewhere are never touched. Rewrites are all-or-nothing per file: a single
call the engine cannot classify leaves that file byte-identical.`,
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

	rootCmd.AddCommand(newRewriteCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
