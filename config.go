package actorio

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/ionrun/actorio/metrics"
)

// Config holds Runtime configuration. Build one with New(opts...); the
// zero value is never used directly.
type Config struct {
	// TimerResolution is checked by validateConfig (it must be positive)
	// and kept in the Config, but the scheduler does not read it: a pending
	// timer is waited on until its own deadline, or until new work wakes
	// the scheduler.
	// Default: 1ms.
	TimerResolution time.Duration

	// ParallelWorkers, when non-zero, switches the Runtime to the opt-in
	// multi-worker execution mode: continuations are dispatched across this
	// many OS-thread-backed workers instead of running single-threaded.
	// Default: 0 (single-threaded cooperative scheduling).
	ParallelWorkers uint

	// DynamicWorkers selects a sync.Pool-backed worker pool instead of a
	// fixed-capacity channel pool. Only meaningful when ParallelWorkers > 0.
	// Default: false.
	DynamicWorkers bool

	// MetricsProvider receives runtime instrumentation (ready queue depth,
	// inbox depth, processes spawned, timers pending).
	// Default: metrics.NewNoopProvider().
	MetricsProvider metrics.Provider

	// Stdout is where Print writes.
	// Default: os.Stdout.
	Stdout io.Writer

	// Stderr is where ExitOnError / LogOnError write.
	// Default: os.Stderr.
	Stderr io.Writer

	// ExitFunc is invoked by the Exit effect. A replacement supplied for
	// testing must itself stop the calling goroutine, the way os.Exit stops
	// the process, or the actor body will keep running past it.
	// Default: os.Exit.
	ExitFunc func(code int)
}

// defaultConfig centralizes default values for Config.
func defaultConfig() Config {
	return Config{
		TimerResolution: time.Millisecond,
		ParallelWorkers: 0,
		DynamicWorkers:  false,
		MetricsProvider: metrics.NewNoopProvider(),
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		ExitFunc:        os.Exit,
	}
}

// validateConfig performs invariant checks, collecting every violation
// found rather than stopping at the first, so New's caller sees the whole
// picture in one error instead of fixing options one at a time.
func validateConfig(cfg *Config) error {
	var result *multierror.Error
	if cfg.TimerResolution <= 0 {
		result = multierror.Append(result, fmt.Errorf("%w: TimerResolution must be positive", ErrInvalidConfig))
	}
	if cfg.MetricsProvider == nil {
		result = multierror.Append(result, fmt.Errorf("%w: MetricsProvider must not be nil", ErrInvalidConfig))
	}
	if cfg.Stdout == nil {
		result = multierror.Append(result, fmt.Errorf("%w: Stdout must not be nil", ErrInvalidConfig))
	}
	if cfg.Stderr == nil {
		result = multierror.Append(result, fmt.Errorf("%w: Stderr must not be nil", ErrInvalidConfig))
	}
	if cfg.ExitFunc == nil {
		result = multierror.Append(result, fmt.Errorf("%w: ExitFunc must not be nil", ErrInvalidConfig))
	}
	return result.ErrorOrNil()
}
