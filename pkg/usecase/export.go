package usecase

import (
	"bytes"
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/interfaces"
	"github.com/hazop-lab/hazgrid/pkg/render/excel"
)

// ExportUseCase produces the xlsx workbook. It operates on a snapshot of the
// hazard list taken at invocation; edits racing the export are not observed.
type ExportUseCase struct {
	repo interfaces.Repository
}

func NewExportUseCase(repo interfaces.Repository) *ExportUseCase {
	return &ExportUseCase{repo: repo}
}

// Workbook renders all stored hazards into an xlsx buffer.
func (uc *ExportUseCase) Workbook(ctx context.Context) (*bytes.Buffer, error) {
	hazards, err := uc.repo.Hazard().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to snapshot hazards for export")
	}
	matrix, err := uc.repo.Matrix().Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load risk matrix for export")
	}

	buf, err := excel.NewExporter(matrix).Export(ctx, hazards)
	if err != nil {
		return nil, goerr.Wrap(err, "xlsx export failed")
	}
	return buf, nil
}
