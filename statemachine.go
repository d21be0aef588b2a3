package actorio

// StateMachine describes a process whose behavior is a pure update
// function over an explicit Model, driven by messages of type Msg. Init
// runs once to produce the starting Model from Args; every subsequent
// message received on the process's inbox is folded through Update,
// which returns both the next Model and an IOValue to run as a side
// effect of that transition (commonly None[E]() when a transition has no
// side effect of its own).
type StateMachine[Args, Model, Msg, E any] struct {
	Init   func(Args) (Model, IOValue[E, Unit])
	Update func(Model, Msg) (Model, IOValue[E, Unit])
}

// SpawnStateMachine spawns a process that runs sm: Init produces the
// first Model and an initial effect, then the process loops
// receive-update-run forever (or until the process's own IOValue chain
// fails, which ends the loop and reports the failure to onExit). The loop
// is trampolined through Inbox.receive's scheduler-enqueue guarantee, so
// it never grows the native Go call stack regardless of how many messages
// it processes.
func SpawnStateMachine[Args, Model, Msg, E any](
	rt *Runtime, args Args, sm StateMachine[Args, Model, Msg, E], onExit Address[Result[E, Unit]],
) IOValue[never, *Process[Msg]] {
	return Spawn(rt, func(proc *Process[Msg]) IOValue[E, Unit] {
		model, initEffect := sm.Init(args)
		return AndThen(initEffect, func(Unit) IOValue[E, Unit] {
			return stateMachineLoop(proc, sm, model)
		})
	}, onExit)
}

func stateMachineLoop[Args, Model, Msg, E any](
	proc *Process[Msg], sm StateMachine[Args, Model, Msg, E], model Model,
) IOValue[E, Unit] {
	return AndThen(Receive[E, Msg](proc.Inbox()), func(msg Msg) IOValue[E, Unit] {
		nextModel, effect := sm.Update(model, msg)
		return AndThen(effect, func(Unit) IOValue[E, Unit] {
			return stateMachineLoop(proc, sm, nextModel)
		})
	})
}
