package coro

// InnerRef is the non-owning back-pointer into a Coroutine Object given
// to the body so it can yield (spec.md §3, §6). InnerRef values are
// copyable and valid exactly while the owning Handle lives: the cycle
// between a Handle and the InnerRef(s) it hands out is broken by
// ownership, not by reference counting -- the Handle owns the
// coroutineObject, and the back-pointer simply becomes unreachable once
// the Handle (and hence the coroutineObject) is collected, by which
// point the body has already been forced to terminate via Close.
type InnerRef[T any] struct {
	coro *coroutineObject[T]
}

// YieldBack transfers control back to whoever last called Resume/
// ResumeWith, with no value supplied, and blocks until resumed again
// (spec.md §4.4). It returns the value (if any) supplied by the next
// ResumeWith.
func (r *InnerRef[T]) YieldBack() *T {
	return r.coro.yieldWith(nil, false)
}

// YieldWith transfers control back with value, and blocks until
// resumed again, returning the value (if any) supplied by that resume.
func (r *InnerRef[T]) YieldWith(value T) *T {
	return r.coro.yieldWith(&value, true)
}

// Name returns the coroutine's diagnostic label, if any.
func (r *InnerRef[T]) Name() (string, bool) {
	return r.coro.name, r.coro.name != ""
}
