package coro

import "fmt"

// Sentinel errors returned by resume operations.
//
// ErrPanicked uses the sentinel.Error const-string pattern (as seen in
// giantswarm/k8senv's internal/sentinel): a comparable named string
// type, declarable as a const, compatible with errors.Is through plain
// == comparison, with no risk of accidental reassignment the way a var
// produced by errors.New would allow.
const (
	// ErrPanicked is returned by every resume of a coroutine whose body
	// has already panicked on a prior resume (spec.md §7, kind
	// "Panicked").
	ErrPanicked = sentinelError("coro: coroutine already panicked")
)

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

// PanicError is returned by the resume that first observes a coroutine
// body terminating by panic (spec.md §7, kind "Panicking"). Payload is
// the recovered value exactly as passed to panic().
type PanicError struct {
	Name    string
	Payload any
}

func (e *PanicError) Error() string {
	name := e.Name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("coro: coroutine %q panicked: %v", name, e.Payload)
}

// Unwrap allows errors.As/errors.Is to see through to the payload when
// it is itself an error (e.g. a body that called panic(err)).
func (e *PanicError) Unwrap() error {
	if err, ok := e.Payload.(error); ok {
		return err
	}
	return nil
}
