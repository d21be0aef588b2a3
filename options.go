package actorio

import (
	"fmt"
	"io"
	"time"

	"github.com/ionrun/actorio/metrics"
)

// Option configures a Runtime. Use New(opts...) to construct one.
type Option func(*Config, *workerSelection)

// workerSelection tracks which worker-mode option (if any) has already been
// applied, so conflicting choices can be rejected instead of silently
// overriding one another.
type workerSelection struct {
	chosen bool
	kind   string
}

// WithTimerResolution sets Config.TimerResolution, which the scheduler
// does not read (see Config).
func WithTimerResolution(d time.Duration) Option {
	return func(cfg *Config, _ *workerSelection) { cfg.TimerResolution = d }
}

// WithFixedWorkers selects the parallel execution mode with a fixed-size
// pool of n workers (n must be > 0). Conflicts with WithDynamicWorkers.
func WithFixedWorkers(n uint) Option {
	return func(cfg *Config, ws *workerSelection) {
		if ws.chosen && ws.kind != "fixed" {
			panic("actorio: conflicting worker options: WithFixedWorkers and WithDynamicWorkers both specified")
		}
		if n == 0 {
			panic("actorio: WithFixedWorkers requires n > 0")
		}
		ws.chosen, ws.kind = true, "fixed"
		cfg.ParallelWorkers = n
		cfg.DynamicWorkers = false
	}
}

// WithDynamicWorkers selects the parallel execution mode with a
// sync.Pool-backed worker count of n (n must be > 0). Conflicts with
// WithFixedWorkers.
func WithDynamicWorkers(n uint) Option {
	return func(cfg *Config, ws *workerSelection) {
		if ws.chosen && ws.kind != "dynamic" {
			panic("actorio: conflicting worker options: WithFixedWorkers and WithDynamicWorkers both specified")
		}
		if n == 0 {
			panic("actorio: WithDynamicWorkers requires n > 0")
		}
		ws.chosen, ws.kind = true, "dynamic"
		cfg.ParallelWorkers = n
		cfg.DynamicWorkers = true
	}
}

// WithMetrics installs a metrics.Provider for runtime instrumentation.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *Config, _ *workerSelection) { cfg.MetricsProvider = p }
}

// WithStdout overrides where Print writes.
func WithStdout(w io.Writer) Option {
	return func(cfg *Config, _ *workerSelection) { cfg.Stdout = w }
}

// WithStderr overrides where ExitOnError / LogOnError write.
func WithStderr(w io.Writer) Option {
	return func(cfg *Config, _ *workerSelection) { cfg.Stderr = w }
}

// WithExitFunc overrides the function invoked by the Exit effect.
func WithExitFunc(fn func(code int)) Option {
	return func(cfg *Config, _ *workerSelection) { cfg.ExitFunc = fn }
}

// New builds a Runtime from the given options. It panics if two options
// select conflicting worker modes, and returns an error wrapping
// ErrInvalidConfig if the resulting Config fails validation.
func New(opts ...Option) (*Runtime, error) {
	cfg := defaultConfig()
	ws := &workerSelection{}
	for _, opt := range opts {
		if opt == nil {
			panic("actorio: nil option")
		}
		opt(&cfg, ws)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("actorio: invalid runtime config: %w", err)
	}

	return newRuntime(cfg), nil
}
