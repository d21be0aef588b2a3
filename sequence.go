package actorio

// Batch runs each IOValue in ios in order, discarding successes, and
// short-circuits on the first failure. Already-run effects are not undone.
// An empty slice yields Ok(Unit{}).
func Batch[E any](ios []IOValue[E, Unit]) IOValue[E, Unit] {
	return ioValue(func(rt *Runtime, k func(Result[E, Unit])) {
		runBatch(rt, ios, 0, k)
	})
}

func runBatch[E any](rt *Runtime, ios []IOValue[E, Unit], i int, k func(Result[E, Unit])) {
	if i >= len(ios) {
		k(Ok[E, Unit](Unit{}))
		return
	}
	ios[i].run(rt, func(r Result[E, Unit]) {
		if r.IsErr() {
			k(Err[E, Unit](r.Error()))
			return
		}
		runBatch(rt, ios, i+1, k)
	})
}

// Sequence runs each IOValue in ios in order, collecting successes into a
// slice in input order, and short-circuits on the first failure.
// Already-run effects are not undone. An empty slice yields Ok([]).
func Sequence[E, A any](ios []IOValue[E, A]) IOValue[E, []A] {
	return ioValue(func(rt *Runtime, k func(Result[E, []A])) {
		acc := make([]A, 0, len(ios))
		runSequence(rt, ios, 0, acc, k)
	})
}

func runSequence[E, A any](rt *Runtime, ios []IOValue[E, A], i int, acc []A, k func(Result[E, []A])) {
	if i >= len(ios) {
		k(Ok[E, []A](acc))
		return
	}
	ios[i].run(rt, func(r Result[E, A]) {
		if r.IsErr() {
			k(Err[E, []A](r.Error()))
			return
		}
		runSequence(rt, ios, i+1, append(acc, r.Value()), k)
	})
}
