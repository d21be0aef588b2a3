package actorio

import (
	"sync"

	"github.com/google/uuid"
)

// Future is a one-shot handle to the eventual Result of a body started
// with Async. It wraps a dedicated single-message inbox: Await receives
// from it exactly once. Awaiting the same Future a second time parks
// forever, since nothing will ever deliver into an inbox that already
// gave up its one message.
type Future[E, A any] struct {
	inbox *Inbox[Result[E, A]]
}

// Async starts body running as a hidden process (spawned the same way
// Spawn does, but with no caller-visible Process[M] and an inbox the
// caller never gets to send into directly) and returns a Future for its
// eventual Result. Like Spawn, Async returns before body has run even one
// step.
func Async[E, A any](rt *Runtime, body func() IOValue[E, A]) IOValue[never, Future[E, A]] {
	return ioValue(func(rt *Runtime, k func(Result[never, Future[E, A]])) {
		resultInbox := createInbox[Result[E, A]](rt)
		fut := Future[E, A]{inbox: resultInbox}
		onExit := IdentityAddress(resultInbox)

		rt.sched.recordSpawn()
		rt.sched.enqueue(func() {
			runAsyncBody(rt, body, onExit)
		})

		k(Ok[never, Future[E, A]](fut))
	})
}

func runAsyncBody[E, A any](rt *Runtime, body func() IOValue[E, A], onExit Address[Result[E, A]]) {
	var once sync.Once
	deliver := func(r Result[E, A]) {
		once.Do(func() { onExit.send(rt, r) })
	}

	defer func() {
		if rec := recover(); rec != nil {
			deliver(Err[E, A](panicToFailure[E](rec, uuid.Nil)))
		}
	}()

	body().run(rt, deliver)
}

// SpawnAsync combines inbox-creation and spawn in one step: it creates a
// fresh Result inbox F, spawns body with onExit = identityAddress(F), and
// returns both the child's address (for sending it messages of type M)
// and a Future wrapping F (for awaiting its eventual Result). It is built
// directly from Spawn and IdentityAddress, with no behavior of its own
// beyond combining them.
func SpawnAsync[M, E, A any](rt *Runtime, body func(*Process[M]) IOValue[E, A]) IOValue[never, SpawnedAsync[M, E, A]] {
	return ioValue(func(rt *Runtime, k func(Result[never, SpawnedAsync[M, E, A]])) {
		resultInbox := createInbox[Result[E, A]](rt)
		fut := Future[E, A]{inbox: resultInbox}
		onExit := IdentityAddress(resultInbox)

		Spawn(rt, body, onExit).run(rt, func(r Result[never, *Process[M]]) {
			proc := r.Value()
			k(Ok[never, SpawnedAsync[M, E, A]](SpawnedAsync[M, E, A]{
				Address: IdentityAddress(proc.Inbox()),
				Future:  fut,
			}))
		})
	})
}

// SpawnedAsync is the pair SpawnAsync returns: an address to send the new
// process messages of type M, and a Future to await its terminal Result.
type SpawnedAsync[M, E, A any] struct {
	Address Address[M]
	Future  Future[E, A]
}

// Await suspends the calling actor until fut's body completes, and
// yields its Result. Await is itself infallible at the IOValue level (it
// always succeeds with a Result[E, A], whatever that Result says); the
// body's own failure is data, not a suspension failure.
func Await[E, A any](fut Future[E, A]) IOValue[never, Result[E, A]] {
	return ioValue(func(rt *Runtime, k func(Result[never, Result[E, A]])) {
		fut.inbox.receive(rt, func(r Result[E, A]) {
			k(Ok[never, Result[E, A]](r))
		})
	})
}
