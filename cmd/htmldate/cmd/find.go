package cmd

import "github.com/spf13/cobra"

// findCmd mirrors the root command's default action as an explicit
// subcommand, so "htmldate find page.html" and "htmldate page.html" are
// equivalent, matching the original project's examine/find-date naming.
var findCmd = &cobra.Command{
	Use:           "find [file]",
	Short:         "Extract a date from an HTML document (default action)",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFind,
}
