package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/interfaces"
	"github.com/hazop-lab/hazgrid/pkg/engine"
	"github.com/hazop-lab/hazgrid/pkg/utils/async"
	"github.com/hazop-lab/hazgrid/pkg/utils/errutil"
)

const defaultLayoutDelay = 50 * time.Millisecond

// LayoutUseCase computes and caches the block allocations for the whole
// hazard list. Mutations invalidate the cache and schedule a coalesced
// recomputation: a burst of edits costs one re-layout on the next tick.
type LayoutUseCase struct {
	repo interfaces.Repository

	mu    sync.Mutex
	cache []engine.BlockLayout
	valid bool

	relayout *async.Coalescer
}

func NewLayoutUseCase(repo interfaces.Repository, delay time.Duration) *LayoutUseCase {
	uc := &LayoutUseCase{repo: repo}
	uc.relayout = async.NewCoalescer(delay, func(ctx context.Context) {
		if _, err := uc.Layouts(ctx); err != nil {
			errutil.Handle(ctx, err, "coalesced re-layout failed")
		}
	})
	return uc
}

// Layouts returns the allocation for every hazard, in list order. The result
// is served from cache until the next mutation.
func (uc *LayoutUseCase) Layouts(ctx context.Context) ([]engine.BlockLayout, error) {
	uc.mu.Lock()
	if uc.valid {
		cached := make([]engine.BlockLayout, len(uc.cache))
		copy(cached, uc.cache)
		uc.mu.Unlock()
		return cached, nil
	}
	uc.mu.Unlock()

	hazards, err := uc.repo.Hazard().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list hazards for layout")
	}

	layouts := make([]engine.BlockLayout, len(hazards))
	for i, h := range hazards {
		layouts[i] = engine.Allocate(h)
	}

	uc.mu.Lock()
	uc.cache = layouts
	uc.valid = true
	uc.mu.Unlock()

	result := make([]engine.BlockLayout, len(layouts))
	copy(result, layouts)
	return result, nil
}

// Invalidate drops the cache and schedules a coalesced recomputation.
func (uc *LayoutUseCase) Invalidate(ctx context.Context) {
	uc.mu.Lock()
	uc.valid = false
	uc.cache = nil
	uc.mu.Unlock()

	uc.relayout.Trigger(ctx)
}

// Close cancels any pending recomputation.
func (uc *LayoutUseCase) Close() {
	uc.relayout.Stop()
}
