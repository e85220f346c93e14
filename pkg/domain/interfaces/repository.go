package interfaces

import (
	"context"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	Hazard() HazardRepository
	Matrix() MatrixRepository
	Close() error
}

// HazardRepository persists the ordered hazard list. Implementations must
// preserve list order: hazards render in the order the workshop recorded
// them.
type HazardRepository interface {
	Create(ctx context.Context, hazard *model.Hazard) (*model.Hazard, error)
	Get(ctx context.Context, id types.HazardID) (*model.Hazard, error)
	List(ctx context.Context) ([]*model.Hazard, error)
	Update(ctx context.Context, hazard *model.Hazard) (*model.Hazard, error)
	Delete(ctx context.Context, id types.HazardID) error

	// ReplaceAll swaps the whole list, used by document import.
	ReplaceAll(ctx context.Context, hazards []*model.Hazard) error
}

// MatrixRepository persists the risk matrix configuration. Get returns the
// default matrix when none has been stored.
type MatrixRepository interface {
	Get(ctx context.Context) (*model.RiskMatrix, error)
	Put(ctx context.Context, matrix *model.RiskMatrix) error
}
