package coro

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corostack/coro/internal/stackpool"
)

// Drop reclaims stack (spec.md §8 property 4): dropping N handles and
// spawning N more of the same size performs at most N fresh
// allocations total.
func TestDropReclaimsStackForReuse(t *testing.T) {
	pool := stackpool.New()
	const n = 5

	var handles []*Handle[int]
	for i := 0; i < n; i++ {
		h := SpawnWithOptions(func(ref *InnerRef[int]) {
			ref.YieldWith(0)
		}, withPool(pool))
		handles = append(handles, h)
	}
	for _, h := range handles {
		require.NoError(t, h.Close())
	}
	require.LessOrEqual(t, pool.Allocated(), int64(n))

	handles = nil
	for i := 0; i < n; i++ {
		h := SpawnWithOptions(func(ref *InnerRef[int]) {}, withPool(pool))
		handles = append(handles, h)
	}
	for _, h := range handles {
		require.NoError(t, h.Close())
	}
	require.LessOrEqual(t, pool.Allocated(), int64(n))
}

func TestCreatedCoroutineNeverStartsGoroutineBeforeClose(t *testing.T) {
	pool := stackpool.New()
	started := false
	h := SpawnWithOptions(func(ref *InnerRef[int]) {
		started = true
	}, withPool(pool))

	require.NoError(t, h.Close())
	require.False(t, started, "body must not run for a Close on a never-resumed coroutine")
}
