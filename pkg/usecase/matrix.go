package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/interfaces"
	"github.com/hazop-lab/hazgrid/pkg/domain/model"
)

// MatrixUseCase manages the risk matrix configuration. Changing the matrix
// does not move rows, but cached layouts carry rendered risk labels, so
// mutations still invalidate.
type MatrixUseCase struct {
	repo   interfaces.Repository
	layout *LayoutUseCase
}

func NewMatrixUseCase(repo interfaces.Repository, layout *LayoutUseCase) *MatrixUseCase {
	return &MatrixUseCase{repo: repo, layout: layout}
}

func (uc *MatrixUseCase) Get(ctx context.Context) (*model.RiskMatrix, error) {
	matrix, err := uc.repo.Matrix().Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load risk matrix")
	}
	return matrix, nil
}

// Update replaces the scales and levels, regenerating the cell mapping from
// the default rule. Custom cells never survive a scale change.
func (uc *MatrixUseCase) Update(ctx context.Context, matrix *model.RiskMatrix) (*model.RiskMatrix, error) {
	if len(matrix.Likelihood) == 0 || len(matrix.Severity) == 0 {
		return nil, goerr.Wrap(ErrInvalidMatrix, "at least one likelihood and one severity level required")
	}
	if len(matrix.Levels) == 0 {
		return nil, goerr.Wrap(ErrInvalidMatrix, "at least one risk level required")
	}

	matrix.Normalize()
	matrix.Rebuild()
	if err := uc.repo.Matrix().Put(ctx, matrix); err != nil {
		return nil, goerr.Wrap(err, "failed to store risk matrix")
	}
	uc.layout.Invalidate(ctx)
	return matrix, nil
}

// ImportConfig applies a matrix interchange document. A document without an
// explicit cell mapping gets the default rule.
func (uc *MatrixUseCase) ImportConfig(ctx context.Context, data []byte) (*model.RiskMatrix, error) {
	matrix, err := model.DecodeMatrixConfig(data)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Matrix().Put(ctx, matrix); err != nil {
		return nil, goerr.Wrap(err, "failed to store imported risk matrix")
	}
	uc.layout.Invalidate(ctx)
	return matrix, nil
}

// ExportConfig serializes the stored matrix in the interchange format.
func (uc *MatrixUseCase) ExportConfig(ctx context.Context) ([]byte, error) {
	matrix, err := uc.repo.Matrix().Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load risk matrix for export")
	}
	return model.EncodeMatrixConfig(matrix)
}
