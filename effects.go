package actorio

import (
	"fmt"
	"time"
)

// Print writes s followed by a newline to the Runtime's configured
// Stdout. It never fails.
func Print[E any](s string) IOValue[E, Unit] {
	return ioValue(func(rt *Runtime, k func(Result[E, Unit])) {
		fmt.Fprintln(rt.cfg.Stdout, s)
		k(Ok[E, Unit](Unit{}))
	})
}

// Sleep suspends the calling actor for at least d before continuing. It
// never fails. Other actors are free to run while this actor sleeps; a
// cooperative scheduler only ever suspends at points like this one.
func Sleep[E any](d time.Duration) IOValue[E, Unit] {
	return ioValue(func(rt *Runtime, k func(Result[E, Unit])) {
		rt.sched.scheduleAfter(d, func() { k(Ok[E, Unit](Unit{})) })
	})
}

// Exit invokes the Runtime's configured ExitFunc with code. Callers
// should treat an IOValue built from Exit as non-returning; the default
// ExitFunc (os.Exit) never returns to its caller at all.
func Exit[E any](code int) IOValue[E, Unit] {
	return ioValue(func(rt *Runtime, k func(Result[E, Unit])) {
		rt.cfg.ExitFunc(code)
		k(Ok[E, Unit](Unit{}))
	})
}
