package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ionrun/actorio"
)

var deadletterCmd = &cobra.Command{
	Use:   "deadletter",
	Short: "Send to an address whose process has already exited; the send still succeeds",
	RunE:  runDeadletter,
}

func init() { rootCmd.AddCommand(deadletterCmd) }

func runDeadletter(_ *cobra.Command, _ []string) error {
	rt, err := actorio.New()
	if err != nil {
		return err
	}
	defer rt.Shutdown()

	done := make(chan struct{})
	onExit := actorio.HandlerAddress(func(_ *actorio.Runtime, _ actorio.Result[error, actorio.Unit]) {
		close(done)
	})

	spawned := actorio.Run(rt, actorio.Spawn(rt, func(_ *actorio.Process[actorio.Unit]) actorio.IOValue[error, actorio.Unit] {
		return actorio.Return[error, actorio.Unit](actorio.Unit{})
	}, onExit))
	<-done

	addr := actorio.IdentityAddress(spawned.Value().Inbox())
	result := actorio.Run(rt, actorio.Send[error](addr, actorio.Unit{}))
	fmt.Println("send to exited process ok:", result.IsOk())

	return nil
}
