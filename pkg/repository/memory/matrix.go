package memory

import (
	"context"
	"sync"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
)

type matrixRepository struct {
	mu     sync.RWMutex
	matrix *model.RiskMatrix
}

func newMatrixRepository() *matrixRepository {
	return &matrixRepository{}
}

func (r *matrixRepository) Get(ctx context.Context) (*model.RiskMatrix, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.matrix == nil {
		return model.DefaultRiskMatrix(), nil
	}
	return r.matrix.Clone(), nil
}

func (r *matrixRepository) Put(ctx context.Context, matrix *model.RiskMatrix) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := matrix.Clone()
	stored.Normalize()
	r.matrix = stored
	return nil
}
