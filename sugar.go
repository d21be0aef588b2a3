package actorio

import (
	"fmt"
	"time"
)

// SpawnWorker spawns a process that repeatedly receives a message from
// its own inbox and runs handle against it, forever, until handle itself
// fails (ending the loop and reporting the failure to onExit). It is the
// common case of SpawnStateMachine with no Model: a worker whose only
// state is "what message am I holding right now."
func SpawnWorker[M, E any](rt *Runtime, handle func(M) IOValue[E, Unit], onExit Address[Result[E, Unit]]) IOValue[never, *Process[M]] {
	return Spawn(rt, func(proc *Process[M]) IOValue[E, Unit] {
		return workerLoop(proc, handle)
	}, onExit)
}

func workerLoop[M, E any](proc *Process[M], handle func(M) IOValue[E, Unit]) IOValue[E, Unit] {
	return AndThen(Receive[E, M](proc.Inbox()), func(msg M) IOValue[E, Unit] {
		return AndThen(handle(msg), func(Unit) IOValue[E, Unit] {
			return workerLoop(proc, handle)
		})
	})
}

// Call sends a request built by mkMsg (which receives the Address of a
// freshly created, single-use reply inbox) to target, then suspends until
// exactly one reply arrives. This is the standard request/reply pattern:
// target's own message type must include a slot for the reply Address,
// and its handler is expected to Send exactly one reply back.
func Call[M, Resp any](rt *Runtime, target Address[M], mkMsg func(replyTo Address[Resp]) M) IOValue[never, Resp] {
	return ioValue(func(rt *Runtime, k func(Result[never, Resp])) {
		replyInbox := createInbox[Resp](rt)
		replyTo := IdentityAddress(replyInbox)
		target.send(rt, mkMsg(replyTo))
		replyInbox.receive(rt, func(resp Resp) {
			k(Ok[never, Resp](resp))
		})
	})
}

// DeferTo sends v to addr after at least d elapses, without suspending
// the caller beyond that delay. It never fails.
func DeferTo[E, V any](d time.Duration, addr Address[V], v V) IOValue[E, Unit] {
	return AndThen(Sleep[E](d), func(Unit) IOValue[E, Unit] {
		return Send[E](addr, v)
	})
}

// SendTo delivers m directly into ib, without the caller needing to build
// an Address first.
func SendTo[E, M any](ib *Inbox[M], m M) IOValue[E, Unit] {
	return Send[E](IdentityAddress(ib), m)
}

// ExitOnError builds a standard on-exit Address for Result[E, A]: on Ok it
// does nothing, and on Err it prints the failure to rt's Stderr and
// invokes rt's Exit effect with code 1. It is stateless and safe to pass
// as onExit to many Spawn/SpawnStateMachine/SpawnWorker calls concurrently,
// the same as any other Address value.
func ExitOnError[E, A any](rt *Runtime) Address[Result[E, A]] {
	return HandlerAddress(func(rt *Runtime, r Result[E, A]) {
		if r.IsErr() {
			fmt.Fprintln(rt.cfg.Stderr, r.Error())
			rt.cfg.ExitFunc(1)
		}
	})
}

// LogOnError builds a standard on-exit Address for Result[E, A]: on Ok it
// does nothing, and on Err it logs the failure to rt's Stderr without
// invoking Exit. Like ExitOnError, it is stateless and shareable across
// concurrently spawned processes.
func LogOnError[E, A any](rt *Runtime) Address[Result[E, A]] {
	return HandlerAddress(func(rt *Runtime, r Result[E, A]) {
		if r.IsErr() {
			fmt.Fprintln(rt.cfg.Stderr, r.Error())
		}
	})
}
