package coro

import "iter"

// Next implements the Iteration Adapter (spec.md §4.7): each call
// resumes the coroutine once. It reports (value, nil, true) when the
// body produced a value, (zero, err, true) when the body failed, and
// (zero, nil, false) once the body has finished normally without a
// final value -- at which point the sequence is terminal: every
// further Next call also returns (zero, nil, false) without resuming
// anything again, matching "non-restartable, single-consumer".
func (h *Handle[T]) Next() (value T, err error, more bool) {
	var zero T
	if h.iterDone {
		return zero, nil, false
	}
	v, resumeErr := h.Resume()
	if resumeErr != nil {
		h.iterDone = true
		return zero, resumeErr, true
	}
	if v == nil {
		h.iterDone = true
		return zero, nil, false
	}
	return *v, nil, true
}

// All returns a Go 1.23 range-over-func sequence over the same
// iteration adapter as Next, letting callers write:
//
//	for v, err := range h.All() {
//	    if err != nil { ... }
//	}
//
// This is an enrichment beyond spec.md's classic lazy-sequence
// interface (see SPEC_FULL.md), expressed the idiomatic modern-Go way
// in addition to Next.
func (h *Handle[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err, more := h.Next()
			if !more {
				return
			}
			if !yield(v, err) {
				return
			}
		}
	}
}
