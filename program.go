package actorio

// Program runs root as the single top-level process of a standalone
// actor system, under the fixed root contract Result<string, Unit>: it
// builds a Runtime from opts, spawns root with onExit = exitOnError (so
// an unhandled root failure prints to Stderr and exits the process with
// code 1, the same as any other spawn that opts into exitOnError), drives
// the scheduler to quiescence, shuts down any parallel-mode workers, and
// returns the terminal Result to the Go caller as well. This is the
// harness a cmd/ entry point uses; library code composing smaller
// IOValues together should prefer Run.
func Program[M any](root func(*Process[M]) IOValue[string, Unit], opts ...Option) (Result[string, Unit], error) {
	rt, err := New(opts...)
	if err != nil {
		var zero Result[string, Unit]
		return zero, err
	}
	defer rt.Shutdown()

	var out Result[string, Unit]
	done := make(chan struct{})
	exitOnError := ExitOnError[string, Unit](rt)
	onExit := HandlerAddress(func(rt *Runtime, r Result[string, Unit]) {
		out = r
		exitOnError.send(rt, r)
		close(done)
	})

	Spawn(rt, root, onExit).run(rt, func(Result[never, *Process[M]]) {})
	rt.sched.run()
	<-done

	return out, nil
}
