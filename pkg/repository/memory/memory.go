package memory

import (
	"github.com/hazop-lab/hazgrid/pkg/domain/interfaces"
)

// Memory is the in-memory repository used for development and tests.
type Memory struct {
	hazard *hazardRepository
	matrix *matrixRepository
}

var _ interfaces.Repository = &Memory{}

// New creates an empty in-memory repository.
func New() *Memory {
	return &Memory{
		hazard: newHazardRepository(),
		matrix: newMatrixRepository(),
	}
}

func (m *Memory) Hazard() interfaces.HazardRepository {
	return m.hazard
}

func (m *Memory) Matrix() interfaces.MatrixRepository {
	return m.matrix
}

func (m *Memory) Close() error {
	return nil
}
