package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "actorio-demo",
	Short: "Worked scenarios for the actorio runtime",
	Long: `actorio-demo runs the runtime's worked scenarios as subcommands: a
printing actor, a counter state machine, request/reply, async/await,
concurrent short-circuit composition, a dead-letter send, and the printing
actor run through the Program harness.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
