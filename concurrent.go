package actorio

import "sync"

// Concurrent starts every IOValue in ios by wrapping it in Async, so each
// one runs as its own hidden process and they are scheduled interleaved
// rather than one at a time, then awaits every resulting Future in turn.
// Wrapping each branch in Async also isolates it the same way Spawn
// isolates any other process: a panic in one branch is recovered inside
// that branch's own runAsyncBody and reported as its failure, rather than
// unwinding Concurrent itself and aborting siblings that haven't started
// yet.
//
// Successes are collected into a slice in the original input order
// regardless of which one actually finished first: each slot is filled by
// index as its Future resolves, with a cursor-free direct write since
// every index is known up front.
//
// If one or more fail, Concurrent reports the first failure by input
// index; the rest are still allowed to run to completion (their results,
// success or failure, are discarded) rather than being abandoned
// mid-flight, since actorio has no cancellation primitive to stop them
// safely.
func Concurrent[E, A any](ios []IOValue[E, A]) IOValue[E, []A] {
	return ioValue(func(rt *Runtime, k func(Result[E, []A])) {
		n := len(ios)
		if n == 0 {
			k(Ok[E, []A](nil))
			return
		}

		futs := make([]Future[E, A], n)
		for i, io := range ios {
			io := io
			Async(rt, func() IOValue[E, A] { return io }).run(rt, func(r Result[never, Future[E, A]]) {
				futs[i] = r.Value()
			})
		}

		var mu sync.Mutex
		results := make([]A, n)
		remaining := n
		firstErrIdx := -1
		var firstErr E

		for i, fut := range futs {
			i, fut := i, fut
			Await(fut).run(rt, func(outer Result[never, Result[E, A]]) {
				r := outer.Value()
				mu.Lock()
				if r.IsErr() {
					if firstErrIdx < 0 || i < firstErrIdx {
						firstErrIdx = i
						firstErr = r.Error()
					}
				} else {
					results[i] = r.Value()
				}
				remaining--
				finished := remaining == 0
				errIdx, err, out := firstErrIdx, firstErr, results
				mu.Unlock()

				if !finished {
					return
				}
				if errIdx >= 0 {
					k(Err[E, []A](err))
					return
				}
				done := make([]A, n)
				copy(done, out)
				k(Ok[E, []A](done))
			})
		}
	})
}
