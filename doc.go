// Package actorio provides a deferred-computation value (IOValue) and an
// actor-model concurrency runtime layered on top of it.
//
// IOValue
//
// An IOValue[E, A] is a value describing an effectful computation that
// either succeeds with an A or fails with an E. Values are built with
// Return, Fail, Map, AndThen, Recover and friends, and are inert until
// handed to a Runtime via Spawn or Program: building an IOValue never runs
// anything.
//
// Actors
//
// An Inbox[M] is a FIFO queue of messages of type M owned by exactly one
// process. An Address[V] is a send-only capability targeting an inbox (or
// a direct handler), optionally transforming values of type V into the
// inbox's message type M. Spawn starts a new process running a user-
// supplied IOValue against a fresh Inbox, forwarding its terminal Result to
// a caller-supplied on-exit Address exactly once.
//
// Scheduling
//
// The default Runtime is single-threaded and cooperative: exactly one
// continuation runs at a time, and actors interleave only at explicit
// suspension points (receive on an empty inbox, sleep, spawn, async). An
// opt-in multi-worker execution mode is available via WithFixedWorkers /
// WithDynamicWorkers for host environments that want continuations spread
// across OS threads; see the pool subpackage.
//
// Defaults
// Unless overridden via Option, a Runtime uses:
//   - single-threaded cooperative scheduling (no worker pool)
//   - millisecond timer resolution
//   - os.Stdout / os.Stderr for Print / exitOnError / logOnError
//   - os.Exit for the Exit effect
//   - a no-op metrics.Provider
package actorio
