package actorio

import (
	"container/heap"
	"container/list"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ionrun/actorio/metrics"
	"github.com/ionrun/actorio/pool"
)

// timerEntry is a scheduled continuation waiting for a deadline (sleep).
type timerEntry struct {
	at  time.Time
	fn  continuation
	idx int
}

// timerHeap is a min-heap of timerEntry ordered by deadline.
type timerHeap []*timerEntry

func (h timerHeap) Len() int            { return len(h) }
func (h timerHeap) Less(i, j int) bool  { return h[i].at.Before(h[j].at) }
func (h timerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].idx = i; h[j].idx = j }
func (h *timerHeap) Push(x interface{}) { e := x.(*timerEntry); e.idx = len(*h); *h = append(*h, e) }
func (h *timerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// schedWorker is a stateless executor pulled from a pool.Pool to run one
// continuation on the dispatch goroutine that took it, mirroring the teacher's
// dispatcher+worker+pool trio: a pool hands out reusable executor
// handles, the dispatcher pulls ready work and hands it to one.
type schedWorker struct{}

func newSchedWorker() interface{} { return &schedWorker{} }

func (w *schedWorker) run(c continuation) { c() }

// scheduler is the single-threaded cooperative ready-queue plus timer
// wheel that drives a Runtime, with an opt-in multi-worker execution mode
// for spreading continuations across OS threads.
type scheduler struct {
	mu     sync.Mutex
	ready  *list.List
	timers timerHeap
	wake   chan struct{}

	metrics       metrics.Provider
	readyDepth    metrics.UpDownCounter
	timersPending metrics.UpDownCounter
	processesSpawned metrics.Counter

	parallel bool
	workers  pool.Pool
	inflight int64 // atomic: continuations currently executing in parallel mode
	stop     chan struct{}
	stopOnce sync.Once
	workersWG sync.WaitGroup
}

func newScheduler(cfg Config) *scheduler {
	s := &scheduler{
		ready:  list.New(),
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
	}

	s.metrics = cfg.MetricsProvider
	s.readyDepth = s.metrics.UpDownCounter("actorio_ready_queue_depth")
	s.timersPending = s.metrics.UpDownCounter("actorio_timers_pending")
	s.processesSpawned = s.metrics.Counter("actorio_processes_spawned")

	if cfg.ParallelWorkers > 0 {
		s.parallel = true
		newWorker := func() interface{} { return newSchedWorker() }
		if cfg.DynamicWorkers {
			s.workers = pool.NewDynamic(newWorker)
		} else {
			s.workers = pool.NewFixed(cfg.ParallelWorkers, newWorker)
		}
		for i := uint(0); i < cfg.ParallelWorkers; i++ {
			s.workersWG.Add(1)
			go s.parallelDispatchLoop()
		}
	}

	return s
}

// enqueue appends c to the ready queue. It is always safe to call from any
// goroutine (the scheduler's internal uses, plus the parallel dispatch
// loop, all funnel through here).
func (s *scheduler) enqueue(c continuation) {
	s.mu.Lock()
	s.ready.PushBack(c)
	s.mu.Unlock()
	s.readyDepth.Add(1)
	s.notify()
}

func (s *scheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// scheduleAfter parks c to run no sooner than d from now.
func (s *scheduler) scheduleAfter(d time.Duration, c continuation) {
	if d <= 0 {
		s.enqueue(c)
		return
	}
	s.mu.Lock()
	heap.Push(&s.timers, &timerEntry{at: time.Now().Add(d), fn: c})
	s.mu.Unlock()
	s.timersPending.Add(1)
	s.notify()
}

func (s *scheduler) recordSpawn() { s.processesSpawned.Add(1) }

// run drains the scheduler: it runs ready continuations and fires due
// timers until the ready queue is empty, no timers remain, and (in
// parallel mode) no continuation is currently executing on any worker.
func (s *scheduler) run() {
	if s.parallel {
		s.runParallel()
		return
	}

	for {
		s.mu.Lock()
		if front := s.ready.Front(); front != nil {
			s.ready.Remove(front)
			s.mu.Unlock()
			s.readyDepth.Add(-1)
			front.Value.(continuation)()
			continue
		}
		if len(s.timers) == 0 {
			s.mu.Unlock()
			return
		}
		wait := time.Until(s.timers[0].at)
		s.mu.Unlock()

		if wait <= 0 {
			s.fireDueTimers()
			continue
		}

		select {
		case <-time.After(wait):
		case <-s.wake:
		}
	}
}

func (s *scheduler) fireDueTimers() {
	now := time.Now()
	fired := 0
	s.mu.Lock()
	for len(s.timers) > 0 && !s.timers[0].at.After(now) {
		e := heap.Pop(&s.timers).(*timerEntry)
		s.ready.PushBack(e.fn)
		fired++
	}
	s.mu.Unlock()
	if fired > 0 {
		s.timersPending.Add(-int64(fired))
		s.readyDepth.Add(int64(fired))
	}
}

// runParallel is a best-effort quiescence loop for the multi-worker
// extension: it polls the ready queue, timer heap, and in-flight counter
// until all three are empty at once. Unlike the default mode's run(), this
// cannot be made exact without additional cross-goroutine signaling (a
// worker could be between "queue looked empty" and "about to increment
// inflight"), so a momentarily early or late return is possible. This is
// acceptable for the opt-in parallel extension: it does not change actor
// semantics, only when Run's caller regains control.
func (s *scheduler) runParallel() {
	const pollInterval = 200 * time.Microsecond
	idleStreak := 0
	for idleStreak < 3 {
		s.mu.Lock()
		readyEmpty := s.ready.Len() == 0
		timersEmpty := len(s.timers) == 0
		s.mu.Unlock()

		if readyEmpty && timersEmpty && atomic.LoadInt64(&s.inflight) == 0 {
			idleStreak++
		} else {
			idleStreak = 0
			s.fireDueTimers()
		}
		time.Sleep(pollInterval)
	}
}

func (s *scheduler) parallelDispatchLoop() {
	defer s.workersWG.Done()
	for {
		s.mu.Lock()
		front := s.ready.Front()
		if front != nil {
			s.ready.Remove(front)
		}
		s.mu.Unlock()

		if front == nil {
			select {
			case <-s.wake:
				continue
			case <-s.stop:
				return
			case <-time.After(time.Millisecond):
				continue
			}
		}

		s.readyDepth.Add(-1)
		atomic.AddInt64(&s.inflight, 1)
		ww := s.workers.Get().(*schedWorker)
		ww.run(front.Value.(continuation))
		s.workers.Put(ww)
		atomic.AddInt64(&s.inflight, -1)
	}
}

// shutdown stops parallel dispatch goroutines. Safe to call multiple
// times; a no-op in single-threaded mode.
func (s *scheduler) shutdown() {
	if !s.parallel {
		return
	}
	s.stopOnce.Do(func() { close(s.stop) })
	s.workersWG.Wait()
}
