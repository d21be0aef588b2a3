package actorio

import (
	"sync"

	"github.com/google/uuid"
)

// Inbox is a FIFO queue of messages of type M owned by exactly one
// process. At any quiescent moment (no goroutine currently inside deliver
// or receive) at most one of its message queue and waiter queue is
// non-empty: a receive either finds a message waiting and consumes it, or
// parks as a waiter; a deliver either finds a waiter parked and wakes it,
// or enqueues the message.
type Inbox[M any] struct {
	id uuid.UUID

	mu       sync.Mutex
	messages []M
	waiters  []func(M)
	dead     bool

	depthGauge func(delta int64)
}

func createInbox[M any](rt *Runtime) *Inbox[M] {
	ib := &Inbox[M]{id: uuid.New()}
	gauge := rt.sched.metrics.UpDownCounter("actorio_inbox_depth")
	ib.depthGauge = gauge.Add
	return ib
}

// CreateInbox builds a fresh Inbox[M] as an IOValue. Creating an inbox is
// infallible.
func CreateInbox[E, M any](rt *Runtime) IOValue[E, *Inbox[M]] {
	return ioValue(func(rt *Runtime, k func(Result[E, *Inbox[M]])) {
		k(Ok[E, *Inbox[M]](createInbox[M](rt)))
	})
}

// ID returns the inbox's identity, useful for diagnostics and metrics
// correlation. It carries no meaning over the wire; there is no wire
// format.
func (ib *Inbox[M]) ID() uuid.UUID { return ib.id }

// deliver enqueues m for ib. If a receiver is already parked, m is handed
// straight to it (still via the scheduler, never inline) instead of being
// queued. Delivering to a dead inbox is a silent no-op: actorio has no
// dead-letter error, matching the at-most-once, fire-and-forget contract
// of Address sends.
func (ib *Inbox[M]) deliver(rt *Runtime, m M) {
	ib.mu.Lock()
	if ib.dead {
		ib.mu.Unlock()
		return
	}
	if len(ib.waiters) > 0 {
		w := ib.waiters[0]
		ib.waiters = ib.waiters[1:]
		ib.mu.Unlock()
		rt.sched.enqueue(func() { w(m) })
		return
	}
	ib.messages = append(ib.messages, m)
	ib.mu.Unlock()
	ib.depthGauge(1)
}

// receive consumes the next message for ib, calling k once it is
// available. If a message is already queued it is dequeued immediately;
// otherwise k is parked as a waiter until a matching deliver arrives. In
// either case k's eventual invocation is always funneled back through
// rt.sched.enqueue rather than called inline: this keeps every suspension
// point trampolined through the scheduler's dispatch loop, so a tight
// receive-then-recurse actor body (spawnWorker's and spawnStateMachine's
// loops) never grows the native call stack no matter how many messages
// are already backlogged.
func (ib *Inbox[M]) receive(rt *Runtime, k func(M)) {
	ib.mu.Lock()
	if len(ib.messages) > 0 {
		m := ib.messages[0]
		ib.messages = ib.messages[1:]
		ib.mu.Unlock()
		ib.depthGauge(-1)
		rt.sched.enqueue(func() { k(m) })
		return
	}
	ib.waiters = append(ib.waiters, k)
	ib.mu.Unlock()
}

// teardown marks ib dead: further deliver calls are silently dropped, and
// any still-parked waiters are abandoned (they never fire, matching the
// spec's "second await blocks forever" treatment of an exhausted inbox).
func (ib *Inbox[M]) teardown() {
	ib.mu.Lock()
	ib.dead = true
	dropped := len(ib.messages)
	ib.messages = nil
	ib.waiters = nil
	ib.mu.Unlock()
	if dropped > 0 {
		ib.depthGauge(-int64(dropped))
	}
}

// Receive returns an IOValue that suspends the calling actor until ib
// yields its next message. It is infallible: an inbox with no messages
// left to deliver simply never wakes the continuation, rather than
// failing.
func Receive[E, M any](ib *Inbox[M]) IOValue[E, M] {
	return ioValue(func(rt *Runtime, k func(Result[E, M])) {
		ib.receive(rt, func(m M) { k(Ok[E, M](m)) })
	})
}

// Send delivers v to addr. Sending is infallible and fire-and-forget: it
// always succeeds immediately, including when the target process has
// already terminated.
func Send[E, V any](addr Address[V], v V) IOValue[E, Unit] {
	return ioValue(func(rt *Runtime, k func(Result[E, Unit])) {
		addr.send(rt, v)
		k(Ok[E, Unit](Unit{}))
	})
}
