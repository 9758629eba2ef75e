package coro

import (
	"runtime"
	"sync"
)

// Handle is the owning reference to a coroutine (spec.md §3, §6). The
// creator holds a Handle and drives the coroutine with Resume/
// ResumeWith. Closing the Handle is Go's rendering of "dropping" it:
// Go has no deterministic destructors, so forced unwind (spec.md §4.5)
// happens on an explicit Close call instead of implicitly at scope
// exit. A finalizer is also registered as a backstop so a Handle that
// is simply garbage collected without Close still reclaims its stack,
// mirroring the safety net tcard-coro's runtime.SetFinalizer provides,
// generalized here from leak *detection* to leak *prevention*.
type Handle[T any] struct {
	coro     *coroutineObject[T]
	once     sync.Once
	iterDone bool
}

// Spawn creates a coroutine with default options (spec.md §6).
func Spawn[T any](body func(*InnerRef[T])) *Handle[T] {
	return SpawnWithOptions(body)
}

// SpawnWithOptions creates a coroutine, applying the given SpawnOptions
// over the defaults (DefaultStackSize, unnamed).
func SpawnWithOptions[T any](body func(*InnerRef[T]), opts ...SpawnOption) *Handle[T] {
	o := resolveOptions(opts)
	c := newCoroutine(o, body)
	h := &Handle[T]{coro: c}
	runtime.SetFinalizer(h, func(h *Handle[T]) { h.Close() })
	return h
}

// Resume transfers control into the coroutine with no value supplied,
// and blocks until it yields or returns (spec.md §4.3).
func (h *Handle[T]) Resume() (*T, error) {
	return h.coro.resumeWith(nil, false)
}

// ResumeWith transfers control into the coroutine, delivering value to
// the pending InnerRef.YieldBack/YieldWith call inside the body (spec.md
// §4.3, §4.4).
func (h *Handle[T]) ResumeWith(value T) (*T, error) {
	return h.coro.resumeWith(&value, true)
}

// Name returns the coroutine's diagnostic label, if any.
func (h *Handle[T]) Name() (string, bool) {
	return h.coro.name, h.coro.name != ""
}

// Close forces the coroutine to terminate if it is still suspended
// mid-body, and returns its stack to the pool (spec.md §4.5). Close is
// idempotent and safe to call more than once.
func (h *Handle[T]) Close() error {
	h.once.Do(func() {
		h.coro.release()
		runtime.SetFinalizer(h, nil)
	})
	return nil
}
