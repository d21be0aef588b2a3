package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ionrun/actorio"
)

var speakerCmd = &cobra.Command{
	Use:   "speaker",
	Short: "Spawn a printing actor and send it Say/Yell messages",
	RunE:  runSpeaker,
}

func init() { rootCmd.AddCommand(speakerCmd) }

type speakerMsg struct {
	yell bool
	text string
}

func say(s string) speakerMsg  { return speakerMsg{text: s} }
func yell(s string) speakerMsg { return speakerMsg{yell: true, text: s} }

func runSpeaker(_ *cobra.Command, _ []string) error {
	rt, err := actorio.New()
	if err != nil {
		return err
	}
	defer rt.Shutdown()

	done := make(chan struct{})
	onExit := actorio.HandlerAddress(func(_ *actorio.Runtime, _ actorio.Result[error, actorio.Unit]) {
		close(done)
	})

	speak := func(proc *actorio.Process[speakerMsg]) actorio.IOValue[error, actorio.Unit] {
		return speakerLoop[error](proc, 2)
	}

	spawned := actorio.Run(rt, actorio.Spawn(rt, speak, onExit))
	proc := spawned.Value()
	addr := actorio.IdentityAddress(proc.Inbox())

	actorio.Run(rt, actorio.Send[error](addr, say("Hello")))
	actorio.Run(rt, actorio.Send[error](addr, yell("World")))
	<-done

	return nil
}

func speakerLoop[E any](proc *actorio.Process[speakerMsg], remaining int) actorio.IOValue[E, actorio.Unit] {
	if remaining == 0 {
		return actorio.None[E]()
	}
	return actorio.AndThen(
		actorio.Receive[E, speakerMsg](proc.Inbox()),
		func(m speakerMsg) actorio.IOValue[E, actorio.Unit] {
			text := m.text
			if m.yell {
				text = strings.ToUpper(text)
			}
			return actorio.AndThen(actorio.Print[E](text), func(actorio.Unit) actorio.IOValue[E, actorio.Unit] {
				return speakerLoop[E](proc, remaining-1)
			})
		},
	)
}
