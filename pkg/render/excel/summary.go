package excel

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/xuri/excelize/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
)

// Auxiliary worksheets. Both are independent flattenings of the hazard list
// and do not reuse the block allocation.
const (
	SummarySheet         = "Summary"
	RecommendationsSheet = "Recommendations"
)

var summaryHeaders = []string{
	"No.", "Hazard", "Consequence", "Category", "Severity", "Likelihood", "Risk",
}

var recommendationHeaders = []string{
	"No.", "Hazard", "Recommended Action", "Responsible",
}

// buildSummarySheet lists one row per rated consequence, with the hazard
// columns merged over the hazard's group of rows. Unrated consequences are
// skipped.
func (wb *workbook) buildSummarySheet(hazards []*model.Hazard) error {
	if _, err := wb.file.NewSheet(SummarySheet); err != nil {
		return goerr.Wrap(err, "failed to create summary sheet")
	}
	if err := wb.setAuxWidths(SummarySheet, []float64{6, 30, 36, 14, 10, 11, 12}); err != nil {
		return err
	}
	if err := wb.writeHeader(SummarySheet, summaryHeaders); err != nil {
		return err
	}

	cursor := 2
	for i, h := range hazards {
		top := cursor
		for _, cons := range h.Consequences {
			risk := cons.Risk
			if !risk.Rated() {
				continue
			}
			risk.Rate(wb.matrix)

			values := []string{
				"", "", // merged hazard columns, written once below
				cons.Text,
				risk.Category.Label(),
				risk.SeverityID.String(),
				risk.LikelihoodID.String(),
				risk.Score,
			}
			for col, v := range values {
				if err := wb.file.SetCellStr(SummarySheet, cellName(col+1, cursor), v); err != nil {
					return goerr.Wrap(err, "failed to write summary row",
						goerr.V("hazardID", h.ID))
				}
			}
			cursor++
		}
		if cursor == top {
			continue // nothing rated in this hazard
		}

		rows := cursor - top
		if err := wb.setMerged(SummarySheet, 1, top, rows, strconv.Itoa(i+1)); err != nil {
			return err
		}
		if err := wb.setMerged(SummarySheet, 2, top, rows, h.Title); err != nil {
			return err
		}
		if err := wb.styleAndColorSummary(h, top); err != nil {
			return err
		}
	}
	return nil
}

func (wb *workbook) styleAndColorSummary(h *model.Hazard, top int) error {
	cursor := top
	for _, cons := range h.Consequences {
		if !cons.Risk.Rated() {
			continue
		}
		if err := wb.file.SetCellStyle(SummarySheet,
			cellName(1, cursor), cellName(len(summaryHeaders), cursor), wb.cellStyle); err != nil {
			return goerr.Wrap(err, "failed to style summary row")
		}
		if level, ok := wb.matrix.Resolve(cons.Risk.SeverityID, cons.Risk.LikelihoodID); ok {
			if styleID, ok := wb.riskStyles[level.ID]; ok {
				riskCell := cellName(len(summaryHeaders), cursor)
				if err := wb.file.SetCellStyle(SummarySheet, riskCell, riskCell, styleID); err != nil {
					return goerr.Wrap(err, "failed to color summary risk cell")
				}
			}
		}
		cursor++
	}
	return nil
}

// buildRecommendationsSheet lists one row per recommendation, grouped and
// merged by hazard.
func (wb *workbook) buildRecommendationsSheet(hazards []*model.Hazard) error {
	if _, err := wb.file.NewSheet(RecommendationsSheet); err != nil {
		return goerr.Wrap(err, "failed to create recommendations sheet")
	}
	if err := wb.setAuxWidths(RecommendationsSheet, []float64{6, 30, 48, 24}); err != nil {
		return err
	}
	if err := wb.writeHeader(RecommendationsSheet, recommendationHeaders); err != nil {
		return err
	}

	cursor := 2
	for i, h := range hazards {
		if len(h.Recommendations) == 0 {
			continue
		}
		top := cursor
		for _, rec := range h.Recommendations {
			row := []string{"", "", rec.Action, rec.Responsible}
			for col, v := range row {
				if err := wb.file.SetCellStr(RecommendationsSheet, cellName(col+1, cursor), v); err != nil {
					return goerr.Wrap(err, "failed to write recommendation row",
						goerr.V("hazardID", h.ID))
				}
			}
			cursor++
		}

		rows := cursor - top
		if err := wb.setMerged(RecommendationsSheet, 1, top, rows, strconv.Itoa(i+1)); err != nil {
			return err
		}
		if err := wb.setMerged(RecommendationsSheet, 2, top, rows, h.Title); err != nil {
			return err
		}
		if err := wb.file.SetCellStyle(RecommendationsSheet,
			cellName(1, top), cellName(len(recommendationHeaders), cursor-1), wb.cellStyle); err != nil {
			return goerr.Wrap(err, "failed to style recommendation rows")
		}
	}
	return nil
}

func (wb *workbook) setAuxWidths(sheet string, widths []float64) error {
	for i, width := range widths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := wb.file.SetColWidth(sheet, name, name, width); err != nil {
			return goerr.Wrap(err, "failed to set column width",
				goerr.V("sheet", sheet), goerr.V("column", name))
		}
	}
	return nil
}
