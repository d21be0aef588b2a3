package actorio

// Runtime owns the scheduler and configuration that every IOValue, Inbox,
// and Process runs against. A Runtime is safe for concurrent use; the
// default (single-threaded cooperative) execution mode still allows
// Spawn/Send/etc. to be called from multiple goroutines; it is only the
// running of actor bodies that is serialized onto the scheduler.
type Runtime struct {
	cfg   Config
	sched *scheduler
}

func newRuntime(cfg Config) *Runtime {
	rt := &Runtime{cfg: cfg}
	rt.sched = newScheduler(cfg)
	return rt
}

// Shutdown stops any parallel-mode worker goroutines. It is a no-op in the
// default single-threaded mode. Call it once the root program's Result has
// been observed.
func (rt *Runtime) Shutdown() {
	rt.sched.shutdown()
}

// Run drives rt's scheduler until io (and everything it transitively
// spawns and waits on) completes, then returns io's Result. This is the
// primary entry point for tests and small tools; Program is the entry
// point for a full actor-system harness rooted at an Inbox.
func Run[E, A any](rt *Runtime, io IOValue[E, A]) Result[E, A] {
	var out Result[E, A]
	done := make(chan struct{})
	io.run(rt, func(r Result[E, A]) {
		out = r
		close(done)
	})
	rt.sched.run()
	<-done
	return out
}
