package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ionrun/actorio"
)

var concurrentCmd = &cobra.Command{
	Use:   "concurrent",
	Short: "Run three IOValues concurrently; the second fails and short-circuits the result",
	RunE:  runConcurrent,
}

func init() { rootCmd.AddCommand(concurrentCmd) }

func runConcurrent(_ *cobra.Command, _ []string) error {
	rt, err := actorio.New()
	if err != nil {
		return err
	}
	defer rt.Shutdown()

	sideEffect := actorio.Run(rt, actorio.CreateInbox[string, int](rt)).Value()
	sideEffectAddr := actorio.IdentityAddress(sideEffect)

	ios := []actorio.IOValue[string, int]{
		actorio.Return[string, int](1),
		actorio.Fail[string, int]("x"),
		actorio.AndThen(actorio.Sleep[string](50*time.Millisecond), func(actorio.Unit) actorio.IOValue[string, int] {
			return actorio.KeepThen(actorio.Return[string, int](3), actorio.Send[string](sideEffectAddr, 3))
		}),
	}

	result := actorio.Run(rt, actorio.Concurrent(ios))
	if result.IsErr() {
		fmt.Println("error:", result.Error())
	} else {
		fmt.Println("ok:", result.Value())
	}

	sideEffectResult := actorio.Run(rt, actorio.Receive[string, int](sideEffect))
	fmt.Println("third IO still ran, value:", sideEffectResult.Value())

	return nil
}
