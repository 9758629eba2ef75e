package machine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corostack/coro/internal/machine"
)

func TestSwapYieldRoundTrip(t *testing.T) {
	ctx := machine.Empty()
	var order []string

	ctx.Init(func() {
		ctx.AwaitFirstResume()
		order = append(order, "child:1")
		ctx.Yield()
		order = append(order, "child:2")
		ctx.YieldFinal()
	})

	order = append(order, "parent:1")
	ctx.Swap()
	order = append(order, "parent:2")
	ctx.Swap()
	order = append(order, "parent:3")

	require.Equal(t, []string{"parent:1", "child:1", "parent:2", "child:2", "parent:3"}, order)
}

func TestSwapAfterYieldFinalIsWellDefined(t *testing.T) {
	ctx := machine.Empty()
	ctx.Init(func() {
		ctx.AwaitFirstResume()
		ctx.YieldFinal()
	})

	ctx.Swap()

	done := make(chan struct{})
	go func() {
		ctx.Swap()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Swap after YieldFinal should still complete")
	}
}
