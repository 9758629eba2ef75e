// Package coro implements stackful, symmetric coroutines: first-class
// user-space execution contexts that cooperatively suspend and resume,
// exchanging a typed value with their caller on every switch.
//
// A coroutine is created with Spawn or SpawnWithOptions. To Spawn, you
// pass a function that defines the coroutine's execution, much like you
// pass a function to the 'go' statement that defines a goroutine's
// execution. The difference is that the coroutine doesn't start right
// away; instead, the Handle returned by Spawn must be resumed.
//
// Handle.Resume (and Handle.ResumeWith) blocks the calling goroutine
// while the coroutine runs. The coroutine body may call YieldBack or
// YieldWith on the InnerRef passed to it, which blocks the coroutine
// until Resume is called again. A value handed to ResumeWith is
// delivered as the return of the body's YieldBack/YieldWith call; a
// value the body hands to YieldWith is delivered as the return of
// Resume/ResumeWith.
//
// Since the coroutine and its resumer never run at the same time and
// execute in a well-defined alternating order, they need no additional
// synchronization around the values they exchange.
//
// # Finishing and panicking
//
// When the body returns normally, the resume that observes this gets
// (nil, nil), and so does every resume after it. When the body panics,
// the resume that observes this gets (nil, err) where err wraps a
// *PanicError; a single diagnostic line is emitted to the configured
// logger, and every subsequent resume returns ErrPanicked instead of
// re-entering the body.
//
// # Closing a coroutine
//
// Dropping a coroutine that is still suspended mid-body is done with
// Handle.Close, which synchronously forces the body to terminate (by
// raising a private, unexported sentinel inside it at its current yield
// point) and returns its stack to the pool. A Handle not explicitly
// closed is still reclaimed via a finalizer, but callers that want
// deterministic, synchronous cleanup should call Close themselves.
package coro
