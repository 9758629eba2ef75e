package coro

// unwindSentinel is the private, opaque marker panicked inside a
// coroutine body to force it to terminate when its handle is dropped
// while the body is suspended (spec.md §4.4, §4.5, §9 "Sentinel
// unwind"). Its only field is a zero-length func array, which makes the
// type non-comparable; the type is unexported, so another package's
// struct{} of the same shape is a different type to a type switch, and
// only *this* package can construct one.
type unwindSentinel struct {
	_ [0]func() // makes the type non-comparable and non-constructible by literal outside this file's intent
}

// theUnwindSentinel is the single instance ever raised. Panic
// Containment recognizes it by pointer identity, not by value, so it
// can be told apart from any user value of the same underlying type.
var theUnwindSentinel = &unwindSentinel{}

// isUnwindSentinel reports whether a recovered panic value is the
// force-unwind marker rather than a user payload.
func isUnwindSentinel(r any) bool {
	p, ok := r.(*unwindSentinel)
	return ok && p == theUnwindSentinel
}
