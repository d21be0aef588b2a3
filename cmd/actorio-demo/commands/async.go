package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ionrun/actorio"
)

var asyncCmd = &cobra.Command{
	Use:   "async",
	Short: "Start a sleeping background computation and await its result",
	RunE:  runAsync,
}

func init() { rootCmd.AddCommand(asyncCmd) }

func runAsync(_ *cobra.Command, _ []string) error {
	rt, err := actorio.New()
	if err != nil {
		return err
	}
	defer rt.Shutdown()

	futResult := actorio.Run(rt, actorio.Async(rt, func() actorio.IOValue[error, int] {
		return actorio.AndThen(actorio.Sleep[error](10*time.Millisecond), func(actorio.Unit) actorio.IOValue[error, int] {
			return actorio.Return[error, int](42)
		})
	}))

	outcome := actorio.Run(rt, actorio.Await(futResult.Value()))
	fmt.Println(outcome.Value().Value())

	return nil
}
