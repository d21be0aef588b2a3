package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ionrun/actorio"
)

var callCmd = &cobra.Command{
	Use:   "call",
	Short: "Request/reply against a freshly spawned counter started at 0",
	RunE:  runCall,
}

func init() { rootCmd.AddCommand(callCmd) }

func runCall(_ *cobra.Command, _ []string) error {
	rt, err := actorio.New()
	if err != nil {
		return err
	}
	defer rt.Shutdown()

	onExit := actorio.HandlerAddress(func(_ *actorio.Runtime, _ actorio.Result[error, actorio.Unit]) {})

	spawned := actorio.Run(rt, actorio.SpawnStateMachine(rt, 0, counterMachine(), onExit))
	proc := spawned.Value()
	addr := actorio.IdentityAddress(proc.Inbox())

	result := actorio.Run(rt, actorio.Call(rt, addr, sendValueTo))
	fmt.Println(result.Value())

	return nil
}
