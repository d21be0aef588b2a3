package actorio

// continuation is a unit of work the scheduler can run. Every suspension
// point in actorio (receive, sleep, spawn, async) boils down to handing one
// of these to a *scheduler instead of calling it inline.
type continuation func()

// IOValue is a deferred computation with a success channel A and a failure
// channel E. Building one never runs anything: run is only invoked once the
// value is handed to a Runtime (directly via Run, or as part of an actor
// body passed to Spawn/Program). run must call k exactly once.
type IOValue[E, A any] struct {
	run func(rt *Runtime, k func(Result[E, A]))
}

func ioValue[E, A any](run func(rt *Runtime, k func(Result[E, A]))) IOValue[E, A] {
	return IOValue[E, A]{run: run}
}

// Return lifts a pure value into an infallible IOValue.
func Return[E, A any](a A) IOValue[E, A] {
	return ioValue(func(_ *Runtime, k func(Result[E, A])) { k(Ok[E, A](a)) })
}

// Succeed is an alias for Return.
func Succeed[E, A any](a A) IOValue[E, A] { return Return[E, A](a) }

// Fail lifts an error value into an IOValue that never reaches the success
// channel of a subsequent AndThen; only Recover (or MapError) can observe
// it.
func Fail[E, A any](e E) IOValue[E, A] {
	return ioValue(func(_ *Runtime, k func(Result[E, A])) { k(Err[E, A](e)) })
}

// None is Return(Unit{}): an infallible IOValue that does nothing.
func None[E any]() IOValue[E, Unit] {
	return Return[E, Unit](Unit{})
}

// Map applies f to the success value only; a failure passes through
// unchanged.
func Map[E, A, B any](io IOValue[E, A], f func(A) B) IOValue[E, B] {
	return ioValue(func(rt *Runtime, k func(Result[E, B])) {
		io.run(rt, func(r Result[E, A]) {
			if r.IsErr() {
				k(Err[E, B](r.Error()))
				return
			}
			k(Ok[E, B](f(r.Value())))
		})
	})
}

// AndThen sequences io into f when io succeeds; a failure in io short-
// circuits the chain and f never runs.
func AndThen[E, A, B any](io IOValue[E, A], f func(A) IOValue[E, B]) IOValue[E, B] {
	return ioValue(func(rt *Runtime, k func(Result[E, B])) {
		io.run(rt, func(r Result[E, A]) {
			if r.IsErr() {
				k(Err[E, B](r.Error()))
				return
			}
			f(r.Value()).run(rt, k)
		})
	})
}

// Recover runs h when io fails, replacing the E1 error channel with
// whatever error channel h's IOValue uses. A success in io passes through
// unchanged and h never runs.
func Recover[E1, E2, A any](io IOValue[E1, A], h func(E1) IOValue[E2, A]) IOValue[E2, A] {
	return ioValue(func(rt *Runtime, k func(Result[E2, A])) {
		io.run(rt, func(r Result[E1, A]) {
			if r.IsErr() {
				h(r.Error()).run(rt, k)
				return
			}
			k(Ok[E2, A](r.Value()))
		})
	})
}

// MapError maps over the error channel only; a success passes through
// unchanged.
func MapError[E1, E2, A any](io IOValue[E1, A], g func(E1) E2) IOValue[E2, A] {
	return ioValue(func(rt *Runtime, k func(Result[E2, A])) {
		io.run(rt, func(r Result[E1, A]) {
			if r.IsErr() {
				k(Err[E2, A](g(r.Error())))
				return
			}
			k(Ok[E2, A](r.Value()))
		})
	})
}

// AndMap is applicative application: it runs iof, then ioa, applying the
// function iof produced to the value ioa produced. Evaluation is
// sequential (iof before ioa), matching AndThen's ordering.
func AndMap[E, A, B any](iof IOValue[E, func(A) B], ioa IOValue[E, A]) IOValue[E, B] {
	return AndThen(iof, func(f func(A) B) IOValue[E, B] {
		return Map(ioa, f)
	})
}

// Map2 lifts a binary pure function over two IOValues, evaluated
// sequentially left-to-right. This is observable if the arguments have
// side effects.
func Map2[E, A, B, C any](ioa IOValue[E, A], iob IOValue[E, B], f func(A, B) C) IOValue[E, C] {
	return AndThen(ioa, func(a A) IOValue[E, C] {
		return Map(iob, func(b B) C { return f(a, b) })
	})
}

// Map3 lifts a ternary pure function over three IOValues, evaluated
// sequentially left-to-right.
func Map3[E, A, B, C, D any](
	ioa IOValue[E, A], iob IOValue[E, B], ioc IOValue[E, C], f func(A, B, C) D,
) IOValue[E, D] {
	return AndThen(ioa, func(a A) IOValue[E, D] {
		return Map2(iob, ioc, func(b B, c C) D { return f(a, b, c) })
	})
}

// Map4 lifts a quaternary pure function over four IOValues, evaluated
// sequentially left-to-right.
func Map4[E, A, B, C, D, F any](
	ioa IOValue[E, A], iob IOValue[E, B], ioc IOValue[E, C], iod IOValue[E, D], f func(A, B, C, D) F,
) IOValue[E, F] {
	return AndThen(ioa, func(a A) IOValue[E, F] {
		return Map3(iob, ioc, iod, func(b B, c C, d D) F { return f(a, b, c, d) })
	})
}

// IgnoreThen runs first, discards its value, then runs second and keeps
// second's value. Both effects happen; only first's value is dropped.
func IgnoreThen[E, A, B any](first IOValue[E, A], second IOValue[E, B]) IOValue[E, B] {
	return AndThen(first, func(A) IOValue[E, B] { return second })
}

// KeepThen runs first, then runs second, and keeps first's value,
// discarding second's. Both effects happen; only second's value is
// dropped.
func KeepThen[E, A, B any](first IOValue[E, A], second IOValue[E, B]) IOValue[E, A] {
	return AndThen(first, func(a A) IOValue[E, A] {
		return Map(second, func(B) A { return a })
	})
}
