package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ionrun/actorio"
)

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Run the speaker scenario through the Program harness under its root exitOnError contract",
	RunE:  runProgram,
}

func init() { rootCmd.AddCommand(programCmd) }

func runProgram(_ *cobra.Command, _ []string) error {
	root := func(proc *actorio.Process[speakerMsg]) actorio.IOValue[string, actorio.Unit] {
		self := actorio.IdentityAddress(proc.Inbox())
		return actorio.AndThen(actorio.Send[string](self, say("Hello")), func(actorio.Unit) actorio.IOValue[string, actorio.Unit] {
			return actorio.AndThen(actorio.Send[string](self, yell("World")), func(actorio.Unit) actorio.IOValue[string, actorio.Unit] {
				return speakerLoop[string](proc, 2)
			})
		})
	}

	result, err := actorio.Program(root)
	if err != nil {
		return err
	}
	fmt.Println("program result ok:", result.IsOk())
	return nil
}
