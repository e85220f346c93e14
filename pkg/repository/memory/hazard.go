package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/domain/types"
	"github.com/hazop-lab/hazgrid/pkg/repository"
)

type hazardRepository struct {
	mu      sync.RWMutex
	hazards []*model.Hazard
}

func newHazardRepository() *hazardRepository {
	return &hazardRepository{
		hazards: []*model.Hazard{},
	}
}

func (r *hazardRepository) Create(ctx context.Context, hazard *model.Hazard) (*model.Hazard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := hazard.Copy()
	if created.ID == "" {
		created.ID = types.NewHazardID()
	}
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Normalize()

	r.hazards = append(r.hazards, created)
	return created.Copy(), nil
}

func (r *hazardRepository) Get(ctx context.Context, id types.HazardID) (*model.Hazard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.hazards {
		if h.ID == id {
			return h.Copy(), nil
		}
	}
	return nil, goerr.Wrap(repository.ErrNotFound, "hazard not found", goerr.V("id", id))
}

func (r *hazardRepository) List(ctx context.Context) ([]*model.Hazard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Hazard, len(r.hazards))
	for i, h := range r.hazards {
		result[i] = h.Copy()
	}
	return result, nil
}

func (r *hazardRepository) Update(ctx context.Context, hazard *model.Hazard) (*model.Hazard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.hazards {
		if h.ID == hazard.ID {
			updated := hazard.Copy()
			updated.CreatedAt = h.CreatedAt
			updated.UpdatedAt = time.Now().UTC()
			updated.Normalize()
			r.hazards[i] = updated
			return updated.Copy(), nil
		}
	}
	return nil, goerr.Wrap(repository.ErrNotFound, "hazard not found", goerr.V("id", hazard.ID))
}

func (r *hazardRepository) Delete(ctx context.Context, id types.HazardID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.hazards {
		if h.ID == id {
			r.hazards = append(r.hazards[:i], r.hazards[i+1:]...)
			return nil
		}
	}
	return goerr.Wrap(repository.ErrNotFound, "hazard not found", goerr.V("id", id))
}

func (r *hazardRepository) ReplaceAll(ctx context.Context, hazards []*model.Hazard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := make([]*model.Hazard, len(hazards))
	for i, h := range hazards {
		replaced[i] = h.Copy()
		replaced[i].Normalize()
	}
	r.hazards = replaced
	return nil
}
