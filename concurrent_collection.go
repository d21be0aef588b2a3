package actorio

import "sync"

// MapConcurrent runs fn over every item in items concurrently and
// collects the results in input order, short-circuiting on the first
// failure by index the same way Concurrent does. It is Concurrent
// wrapped around the common case of building one IOValue per slice
// element.
func MapConcurrent[T, E, A any](items []T, fn func(T) IOValue[E, A]) IOValue[E, []A] {
	ios := make([]IOValue[E, A], len(items))
	for i, item := range items {
		ios[i] = fn(item)
	}
	return Concurrent(ios)
}

// ForEachConcurrent is MapConcurrent for effects with no meaningful
// return value: it runs fn over every item concurrently and discards the
// collected Unit values, reporting only whether one failed (with the
// first failure by index).
func ForEachConcurrent[T, E any](items []T, fn func(T) IOValue[E, Unit]) IOValue[E, Unit] {
	return Map(MapConcurrent(items, fn), func([]Unit) Unit { return Unit{} })
}

// ConcurrentStream runs every IOValue read from in concurrently (unlike
// MapConcurrent/Concurrent, it does not wait to know the full set up
// front) and delivers each one's Result to the returned channel as soon
// as it completes, in completion order rather than input order. The
// returned stop function ends intake and releases the goroutine that
// drains in; it is safe to call more than once. Results of IOValues still
// in flight when stop is called are discarded. The output channel is
// closed once intake has ended (in closed or stop called) and every
// IOValue already read from in has finished.
func ConcurrentStream[E, A any](rt *Runtime, in <-chan IOValue[E, A]) (<-chan Result[E, A], func()) {
	out := make(chan Result[E, A])
	stopCh := make(chan struct{})
	var stopOnce sync.Once
	stop := func() { stopOnce.Do(func() { close(stopCh) }) }

	go func() {
		var inflight sync.WaitGroup
		defer func() {
			inflight.Wait()
			close(out)
		}()
		for {
			select {
			case io, ok := <-in:
				if !ok {
					return
				}
				io := io
				inflight.Add(1)
				rt.sched.enqueue(func() {
					io.run(rt, func(r Result[E, A]) {
						defer inflight.Done()
						select {
						case out <- r:
						case <-stopCh:
						}
					})
				})
			case <-stopCh:
				return
			}
		}
	}()

	return out, stop
}
