package badger

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/domain/types"
	"github.com/hazop-lab/hazgrid/pkg/repository"
	"github.com/hazop-lab/hazgrid/pkg/utils/logging"
)

type hazardRepository struct {
	mu sync.Mutex
	db *badgerdb.DB
}

// load reads the full ordered list. Absent or corrupt data yields an empty
// list rather than an error: externally malformed state must not brick the
// tool.
func (r *hazardRepository) load(ctx context.Context) []*model.Hazard {
	var hazards []*model.Hazard
	found, err := loadValue(r.db, keyHazards, func(val []byte) error {
		return json.Unmarshal(val, &hazards)
	})
	if err != nil || !found || hazards == nil {
		if err != nil {
			logging.From(ctx).Warn("discarding unreadable hazard list", "error", err)
		}
		return []*model.Hazard{}
	}
	for _, h := range hazards {
		h.Normalize()
	}
	return hazards
}

func (r *hazardRepository) store(hazards []*model.Hazard) error {
	data, err := json.Marshal(hazards)
	if err != nil {
		return goerr.Wrap(err, "failed to encode hazard list")
	}
	return storeValue(r.db, keyHazards, data)
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

	hazards := append(r.load(ctx), created)
	if err := r.store(hazards); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *hazardRepository) Get(ctx context.Context, id types.HazardID) (*model.Hazard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.load(ctx) {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, goerr.Wrap(repository.ErrNotFound, "hazard not found", goerr.V("id", id))
}

func (r *hazardRepository) List(ctx context.Context) ([]*model.Hazard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx), nil
}

func (r *hazardRepository) Update(ctx context.Context, hazard *model.Hazard) (*model.Hazard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hazards := r.load(ctx)
	for i, h := range hazards {
		if h.ID == hazard.ID {
			updated := hazard.Copy()
			updated.CreatedAt = h.CreatedAt
			updated.UpdatedAt = time.Now().UTC()
			updated.Normalize()
			hazards[i] = updated
			if err := r.store(hazards); err != nil {
				return nil, err
			}
			return updated, nil
		}
	}
	return nil, goerr.Wrap(repository.ErrNotFound, "hazard not found", goerr.V("id", hazard.ID))
}

func (r *hazardRepository) Delete(ctx context.Context, id types.HazardID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hazards := r.load(ctx)
	for i, h := range hazards {
		if h.ID == id {
			hazards = append(hazards[:i], hazards[i+1:]...)
			return r.store(hazards)
		}
	}
	return goerr.Wrap(repository.ErrNotFound, "hazard not found", goerr.V("id", id))
}

func (r *hazardRepository) ReplaceAll(ctx context.Context, hazards []*model.Hazard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range hazards {
		h.Normalize()
	}
	return r.store(hazards)
}
