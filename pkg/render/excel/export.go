package excel

import (
	"bytes"
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/utils/logging"
)

// Exporter builds xlsx workbooks from a snapshot of the hazard list. The
// caller takes the snapshot; concurrent edits during export are not
// the exporter's concern.
type Exporter struct {
	matrix *model.RiskMatrix
}

// NewExporter creates an exporter rating risks against the given matrix.
func NewExporter(matrix *model.RiskMatrix) *Exporter {
	return &Exporter{matrix: matrix}
}

// Export serializes the hazards into an xlsx workbook. A failure in an
// auxiliary sheet (summary, recommendations) is logged and skipped; only
// main-sheet or serialization failures abort the export.
func (e *Exporter) Export(ctx context.Context, hazards []*model.Hazard) (*bytes.Buffer, error) {
	wb, err := newWorkbook(e.matrix)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := wb.file.Close(); err != nil {
			logging.From(ctx).Warn("failed to close workbook", "error", err)
		}
	}()

	if err := wb.buildMainSheet(hazards); err != nil {
		return nil, err
	}

	if err := wb.buildSummarySheet(hazards); err != nil {
		logging.From(ctx).Warn("summary sheet failed, continuing without it", "error", err)
		if err := wb.file.DeleteSheet(SummarySheet); err != nil {
			logging.From(ctx).Warn("failed to drop broken summary sheet", "error", err)
		}
	}
	if err := wb.buildRecommendationsSheet(hazards); err != nil {
		logging.From(ctx).Warn("recommendations sheet failed, continuing without it", "error", err)
		if err := wb.file.DeleteSheet(RecommendationsSheet); err != nil {
			logging.From(ctx).Warn("failed to drop broken recommendations sheet", "error", err)
		}
	}

	// The excelize default sheet is replaced by ours.
	if err := wb.file.DeleteSheet("Sheet1"); err != nil {
		return nil, goerr.Wrap(err, "failed to drop default sheet")
	}

	buf, err := wb.file.WriteToBuffer()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to serialize workbook")
	}
	return buf, nil
}
