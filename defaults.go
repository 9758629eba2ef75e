package coro

import "github.com/corostack/coro/internal/stackpool"

// Default configuration values for Spawn/SpawnWithOptions.
// Exported so callers can reference them relative to the default (e.g.
// 2 * DefaultStackSize), following the convention set by
// giantswarm/k8senv's defaults.go.
const (
	// DefaultStackSize is the stack size requested when no WithStackSize
	// option is given (spec.md §4.1). An explicit WithStackSize(0) is
	// rounded up to MinStackSize like any other small size.
	DefaultStackSize = stackpool.DefaultSize

	// MinStackSize is the floor requested sizes below are rounded up to.
	MinStackSize = stackpool.MinSize
)
