package coro

import (
	"fmt"
	"sync/atomic"

	"github.com/corostack/coro/internal/diag"
	"github.com/corostack/coro/internal/machine"
	"github.com/corostack/coro/internal/slot"
	"github.com/corostack/coro/internal/stackpool"
)

// coroutineObject is the Coroutine Object of spec.md §3: stack + two
// contexts (folded into one machine.Context, which models the
// parent/child pair as a single rendezvous) + state + slot, plus
// resume/yield/drop.
//
// It is allocated on the heap and never moved after Spawn, satisfying
// DATA MODEL invariant 2: the Handle holds a pointer to it, the
// InnerRef given to the body holds the same pointer, and the
// goroutine started by machine.Context closes over that same pointer.
type coroutineObject[T any] struct {
	ctx   *machine.Context
	stack *stackpool.Stack
	name  string

	state    atomic.Int32
	panicked bool // sticky once true; persists past the one-shot slot that reported it

	slot slot.Slot[T]

	body func(*InnerRef[T])
}

func newCoroutine[T any](opts Options, body func(*InnerRef[T])) *coroutineObject[T] {
	c := &coroutineObject[T]{
		stack: opts.pool.Take(opts.stackSize),
		name:  opts.name,
		body:  body,
	}
	c.state.Store(int32(stateCreated))
	c.ctx = machine.Empty()
	c.ctx.Init(func() { c.trampoline() })
	return c
}

func (c *coroutineObject[T]) loadState() state { return state(c.state.Load()) }

// trampoline is the first thing to run on the coroutine's goroutine. It
// implements spec.md §4.3's "first resume jumps to the trampoline" and
// §4.6 Panic Containment.
func (c *coroutineObject[T]) trampoline() {
	c.ctx.AwaitFirstResume()
	c.state.Store(int32(stateRunning))

	// Take ownership of body: once the trampoline starts, the spawn/drop
	// path no longer needs (or gets another chance) to free it. See
	// DESIGN.md's resolution of spec.md §9's Open Question.
	body := c.body
	c.body = nil

	ref := &InnerRef[T]{coro: c}

	func() {
		defer func() {
			r := recover()
			switch {
			case r == nil:
				c.state.Store(int32(stateFinished))
				c.slot.PutEmpty()
			case isUnwindSentinel(r):
				c.state.Store(int32(stateFinished))
				c.slot.PutEmpty()
			default:
				c.state.Store(int32(stateFinished))
				c.panicked = true
				msg := fmt.Sprint(r)
				diag.PanicLine(c.name, msg)
				c.slot.PutErr(&PanicError{Name: c.name, Payload: r})
			}
		}()
		body(ref)
	}()

	c.ctx.YieldFinal()
}

// resumeWith is the shared implementation of Handle.Resume and
// Handle.ResumeWith (spec.md §4.3).
func (c *coroutineObject[T]) resumeWith(value *T, hasValue bool) (*T, error) {
	switch c.loadState() {
	case stateFinished:
		if c.panicked {
			return nil, ErrPanicked
		}
		return nil, nil
	case stateForceUnwind:
		// Only the destructor resumes a ForceUnwind coroutine; any other
		// caller racing this is outside the single-owner contract (DATA
		// MODEL invariant 5). Treat as terminal, same as Finished.
		return nil, nil
	}

	if hasValue {
		c.slot.PutValue(*value)
	} else {
		c.slot.PutEmpty()
	}

	c.ctx.Swap()

	kind, v, err := c.slot.Take()
	switch kind {
	case slot.Value:
		return &v, nil
	case slot.Err:
		c.panicked = true
		return nil, err
	default: // slot.Empty
		return nil, nil
	}
}

// yieldWith is the shared implementation of InnerRef.YieldBack and
// InnerRef.YieldWith (spec.md §4.4). Called from within the coroutine
// body's goroutine.
func (c *coroutineObject[T]) yieldWith(value *T, hasValue bool) *T {
	if hasValue {
		c.slot.PutValue(*value)
	} else {
		c.slot.PutEmpty()
	}

	c.ctx.Yield()

	if c.loadState() == stateForceUnwind {
		panic(theUnwindSentinel)
	}

	kind, v, _ := c.slot.Take()
	if kind == slot.Value {
		return &v
	}
	return nil
}

// release implements spec.md §4.5's drop/forced-unwind dance.
func (c *coroutineObject[T]) release() {
	switch c.loadState() {
	case stateCreated:
		// No resume was ever performed: the backing goroutine was never
		// started (see machine.Context.Init), so there is nothing to
		// unwind. The handle drops c.body itself.
		c.body = nil
	case stateRunning:
		c.state.Store(int32(stateForceUnwind))
		c.ctx.Swap() // the coroutine raises the sentinel and trampoline catches it
	}
	c.stack.Release()
}
