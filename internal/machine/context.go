// Package machine implements the coroutine machine context: the
// primitive that transfers control (and, by happens-before, memory
// visibility of whatever the transferring side wrote) between a parent
// and a child execution context.
//
// spec.md treats make_context/swap_context as hand-written,
// architecture-specific assembly assumed available from the host ABI.
// No such primitive can be written in portable, cgo-free Go: the
// closest thing Go has to "a private, growable, suspendable stack" is
// a goroutine. This package therefore realizes swap as a rendezvous
// between two goroutines over a pair of unbuffered channels, the way
// github.com/tcard/coro's single yieldCh handshake does, generalized
// into a pair of channels so the parent and child sides read
// symmetrically.
package machine

// Context is one coroutine's half of the parent/child pair. The
// owning side (the Coroutine Object) holds the Context and drives it
// from the parent goroutine via Swap; the child goroutine launched by
// Init drives it from the other side via AwaitFirstResume and Yield.
type Context struct {
	toChild  chan struct{}
	toParent chan struct{}
	entry    func()
	started  bool
}

// Empty returns a zeroed Context, matching spec.md's empty() operation:
// a value only usable as a destination for a later Init.
func Empty() *Context {
	return &Context{
		toChild:  make(chan struct{}),
		toParent: make(chan struct{}),
	}
}

// Init lays out the initial frame: it records entry to be run on a
// fresh goroutine on the first Swap. entry MUST call AwaitFirstResume
// before doing any user-visible work, and MUST NOT return without
// having entered the dead-loop trampoline (YieldFinal) -- falling off
// the end of entry would leave this Context's goroutine with nothing
// left to hand control back to, which is exactly the "fall off the
// end" hazard spec.md §4.2 prohibits for the real trampoline.
//
// Init deliberately does not itself start a goroutine: a
// make_context-style primitive only lays down a stack frame, at no
// runtime cost beyond the memory for the stack, until something
// actually switches to it. Deferring `go entry()` to the first Swap is
// what makes dropping a never-resumed Context free -- no goroutine is
// ever created, so there is nothing to leak.
func (c *Context) Init(entry func()) {
	c.entry = entry
}

// AwaitFirstResume blocks the child goroutine until the parent's first
// Swap. It must be the first thing entry (as passed to Init) does.
func (c *Context) AwaitFirstResume() {
	<-c.toChild
}

// Swap transfers control from the parent goroutine to the child and
// blocks until the child transfers it back via Yield. This is the
// parent-side half of a switch.
func (c *Context) Swap() {
	if !c.started {
		c.started = true
		go c.entry()
	}
	c.toChild <- struct{}{}
	<-c.toParent
}

// Yield transfers control from the child goroutine back to the parent
// and blocks until the parent transfers it back via Swap. This is the
// child-side half of a switch.
func (c *Context) Yield() {
	c.toParent <- struct{}{}
	<-c.toChild
}

// YieldFinal hands control back to the parent one last time without
// waiting to be resumed again. Used by the dead-loop trampoline after
// the body has terminated: further Swap calls from the parent still
// complete (satisfying "any further resume is well-defined"), but this
// goroutine parks forever afterward instead of running anything else.
func (c *Context) YieldFinal() {
	c.toParent <- struct{}{}
	for {
		<-c.toChild
		c.toParent <- struct{}{}
	}
}
