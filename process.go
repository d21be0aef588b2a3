package actorio

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Process is the identity of a spawned actor: its id and its inbox (the
// on-exit address is held by the running body, not here). There is no handle for cancelling or inspecting a
// running process beyond what its own inbox protocol exposes; actorio has
// no supervision tree deeper than "the address that gets told how I
// ended."
type Process[M any] struct {
	id    uuid.UUID
	inbox *Inbox[M]
}

// ID returns the process's identity.
func (p *Process[M]) ID() uuid.UUID { return p.id }

// Inbox returns the process's own inbox, letting a caller hand out
// Addresses into it.
func (p *Process[M]) Inbox() *Inbox[M] { return p.inbox }

// Spawn starts a new process running body against a fresh Inbox[M],
// delivering body's terminal Result to onExit exactly once when it
// completes, whether by success, failure, or recovered panic. Spawn
// itself returns immediately with the new Process[M]; body does not run
// until the scheduler next drains its ready queue, so a caller can never
// observe the child having already produced a message before Spawn
// returns.
func Spawn[M, E, A any](rt *Runtime, body func(*Process[M]) IOValue[E, A], onExit Address[Result[E, A]]) IOValue[never, *Process[M]] {
	return ioValue(func(rt *Runtime, k func(Result[never, *Process[M]])) {
		proc := &Process[M]{id: uuid.New(), inbox: createInbox[M](rt)}
		rt.sched.recordSpawn()

		rt.sched.enqueue(func() {
			runSpawnBody(rt, proc, body, onExit)
		})

		k(Ok[never, *Process[M]](proc))
	})
}

func runSpawnBody[M, E, A any](rt *Runtime, proc *Process[M], body func(*Process[M]) IOValue[E, A], onExit Address[Result[E, A]]) {
	var once sync.Once
	deliverExit := func(r Result[E, A]) {
		once.Do(func() {
			proc.inbox.teardown()
			onExit.send(rt, r)
		})
	}

	defer func() {
		if rec := recover(); rec != nil {
			deliverExit(Err[E, A](panicToFailure[E](rec, proc.id)))
		}
	}()

	body(proc).run(rt, func(r Result[E, A]) {
		if r.IsErr() {
			deliverExit(Err[E, A](tagIfError(r.Error(), proc.id)))
			return
		}
		deliverExit(r)
	})
}

// panicToFailure converts a recovered panic value into a failure of type
// E: when E can hold an error value (E=error) it becomes a process-tagged
// github.com/pkg/errors error carrying a stack trace from the point of
// recovery; when E is string (the root-actor case) it becomes the
// panic's formatted message; for any other E it is E's zero value.
func panicToFailure[E any](rec any, id uuid.UUID) E {
	var zero E
	msg := fmt.Sprintf("actor panicked: %v", rec)

	tagged := newProcessTaggedError(errors.New(msg), id)
	if v, ok := any(tagged).(E); ok {
		return v
	}
	if v, ok := any(msg).(E); ok {
		return v
	}
	return zero
}

// never is an uninhabited failure type used for IOValues that cannot
// themselves fail (Spawn always succeeds with the new Process; only the
// spawned body's own failure, reported later via onExit, can fail).
type never struct{}
