package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ionrun/actorio"
)

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Run the counter state machine: init 7, two increments, read back",
	RunE:  runCounter,
}

func init() { rootCmd.AddCommand(counterCmd) }

type counterMsg struct {
	increment bool
	replyTo   actorio.Address[int]
}

func incr() counterMsg { return counterMsg{increment: true} }

func sendValueTo(addr actorio.Address[int]) counterMsg {
	return counterMsg{replyTo: addr}
}

func counterMachine() actorio.StateMachine[int, int, counterMsg, error] {
	return actorio.StateMachine[int, int, counterMsg, error]{
		Init: func(start int) (int, actorio.IOValue[error, actorio.Unit]) {
			return start, actorio.None[error]()
		},
		Update: func(model int, msg counterMsg) (int, actorio.IOValue[error, actorio.Unit]) {
			if msg.increment {
				return model + 1, actorio.None[error]()
			}
			return model, actorio.Send[error](msg.replyTo, model)
		},
	}
}

func runCounter(_ *cobra.Command, _ []string) error {
	rt, err := actorio.New()
	if err != nil {
		return err
	}
	defer rt.Shutdown()

	onExit := actorio.HandlerAddress(func(_ *actorio.Runtime, _ actorio.Result[error, actorio.Unit]) {})

	spawned := actorio.Run(rt, actorio.SpawnStateMachine(rt, 7, counterMachine(), onExit))
	proc := spawned.Value()
	addr := actorio.IdentityAddress(proc.Inbox())

	replyInbox := actorio.Run(rt, actorio.CreateInbox[error, int](rt)).Value()
	me := actorio.IdentityAddress(replyInbox)

	actorio.Run(rt, actorio.Send[error](addr, incr()))
	actorio.Run(rt, actorio.Send[error](addr, incr()))
	actorio.Run(rt, actorio.Send[error](addr, sendValueTo(me)))

	result := actorio.Run(rt, actorio.Receive[error, int](replyInbox))
	fmt.Println(result.Value())

	return nil
}
