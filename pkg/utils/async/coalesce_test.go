package async_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/hazop-lab/hazgrid/pkg/utils/async"
)

func TestCoalescer(t *testing.T) {
	t.Run("a burst of triggers runs the handler once", func(t *testing.T) {
		var runs atomic.Int32
		c := async.NewCoalescer(20*time.Millisecond, func(ctx context.Context) {
			runs.Add(1)
		})
		defer c.Stop()

		ctx := context.Background()
		for i := 0; i < 10; i++ {
			c.Trigger(ctx)
		}

		time.Sleep(100 * time.Millisecond)
		gt.Number(t, runs.Load()).Equal(int32(1))
	})

	t.Run("separate bursts each run", func(t *testing.T) {
		var runs atomic.Int32
		c := async.NewCoalescer(10*time.Millisecond, func(ctx context.Context) {
			runs.Add(1)
		})
		defer c.Stop()

		ctx := context.Background()
		c.Trigger(ctx)
		time.Sleep(50 * time.Millisecond)
		c.Trigger(ctx)
		time.Sleep(50 * time.Millisecond)

		gt.Number(t, runs.Load()).Equal(int32(2))
	})

	t.Run("stop cancels a pending run", func(t *testing.T) {
		var runs atomic.Int32
		c := async.NewCoalescer(20*time.Millisecond, func(ctx context.Context) {
			runs.Add(1)
		})

		c.Trigger(context.Background())
		c.Stop()

		time.Sleep(60 * time.Millisecond)
		gt.Number(t, runs.Load()).Equal(int32(0))
	})
}
