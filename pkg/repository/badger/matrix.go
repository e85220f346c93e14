package badger

import (
	"context"
	"encoding/json"
	"sync"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/utils/logging"
)

type matrixRepository struct {
	mu sync.Mutex
	db *badgerdb.DB
}

func (r *matrixRepository) Get(ctx context.Context) (*model.RiskMatrix, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matrix model.RiskMatrix
	found, err := loadValue(r.db, keyMatrix, func(val []byte) error {
		return json.Unmarshal(val, &matrix)
	})
	if err != nil || !found {
		if err != nil {
			logging.From(ctx).Warn("discarding unreadable risk matrix", "error", err)
		}
		return model.DefaultRiskMatrix(), nil
	}
	matrix.Normalize()
	return &matrix, nil
}

func (r *matrixRepository) Put(ctx context.Context, matrix *model.RiskMatrix) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(matrix)
	if err != nil {
		return goerr.Wrap(err, "failed to encode risk matrix")
	}
	return storeValue(r.db, keyMatrix, data)
}
