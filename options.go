package coro

import "github.com/corostack/coro/internal/stackpool"

// Options configures a spawned coroutine (spec.md §6). The zero value
// is not used directly; construct via SpawnOption functions passed to
// SpawnWithOptions, following the functional-options shape used by
// tcard-coro's SetOption.
type Options struct {
	stackSize int
	name      string
	pool      *stackpool.Pool
}

// A SpawnOption sets one field of Options.
type SpawnOption func(*Options)

// WithStackSize requests a stack of at least size bytes. Sizes below
// MinStackSize are rounded up (spec.md §4.1).
func WithStackSize(size int) SpawnOption {
	return func(o *Options) { o.stackSize = size }
}

// WithName attaches a human-readable label used in diagnostics and
// returned by Handle.Name/InnerRef.Name.
func WithName(name string) SpawnOption {
	return func(o *Options) { o.name = name }
}

// withPool overrides the stack pool a coroutine draws its stack from.
// Unexported: it exists so tests can use an isolated pool instead of
// the process-wide default, not as public API surface.
func withPool(p *stackpool.Pool) SpawnOption {
	return func(o *Options) { o.pool = p }
}

func resolveOptions(opts []SpawnOption) Options {
	o := Options{stackSize: DefaultStackSize}
	for _, set := range opts {
		set(&o)
	}
	if o.pool == nil {
		o.pool = stackpool.Default()
	}
	return o
}
