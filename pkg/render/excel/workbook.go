// Package excel emits hazard blocks as an xlsx workbook. It consumes the
// same block allocation as the interactive renderer: one merged range per
// cause, consequence and measure at its assigned row range, so the exported
// sheet can never diverge from the on-screen layout.
package excel

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/xuri/excelize/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/domain/types"
	"github.com/hazop-lab/hazgrid/pkg/engine"
)

// MainSheet is the worksheet holding the hazard blocks.
const MainSheet = "Hazard Analysis"

// 1-based worksheet columns of the main sheet.
const (
	colNo = iota + 1
	colHazard
	colCause
	colPrevention
	colConsequence
	colMitigation
	colCategory
	colSeverity
	colLikelihood
	colRisk
	colRecommendations
)

var mainHeaders = []string{
	"No.", "Hazard", "Cause", "Prevention", "Consequence", "Mitigation",
	"Category", "Severity", "Likelihood", "Risk", "Recommendations",
}

var mainColumnWidths = map[int]float64{
	colNo:              6,
	colHazard:          28,
	colCause:           32,
	colPrevention:      32,
	colConsequence:     32,
	colMitigation:      32,
	colCategory:        14,
	colSeverity:        10,
	colLikelihood:      11,
	colRisk:            12,
	colRecommendations: 36,
}

// workbook wraps an excelize file with the style IDs shared across sheets.
type workbook struct {
	file   *excelize.File
	matrix *model.RiskMatrix

	headerStyle int
	cellStyle   int
	riskStyles  map[types.RiskLevelID]int
}

func newWorkbook(matrix *model.RiskMatrix) (*workbook, error) {
	wb := &workbook{
		file:       excelize.NewFile(),
		matrix:     matrix,
		riskStyles: map[types.RiskLevelID]int{},
	}
	if err := wb.buildStyles(); err != nil {
		return nil, err
	}
	return wb, nil
}

func (wb *workbook) buildStyles() error {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	var err error
	wb.headerStyle, err = wb.file.NewStyle(&excelize.Style{
		Border: border,
		Font:   &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to build header style")
	}

	wb.cellStyle, err = wb.file.NewStyle(&excelize.Style{
		Border: border,
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "top",
			WrapText:   true,
		},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to build cell style")
	}

	for _, level := range wb.matrix.Levels {
		if level.Color == "" {
			continue
		}
		styleID, err := wb.file.NewStyle(&excelize.Style{
			Border: border,
			Alignment: &excelize.Alignment{
				Horizontal: "center",
				Vertical:   "center",
				WrapText:   true,
			},
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: 1,
				Color:   []string{strings.TrimPrefix(level.Color, "#")},
			},
			Font: &excelize.Font{Bold: true},
		})
		if err != nil {
			return goerr.Wrap(err, "failed to build risk level style",
				goerr.V("riskLevel", level.ID))
		}
		wb.riskStyles[level.ID] = styleID
	}
	return nil
}

// buildMainSheet lays out one block per hazard, stacked vertically under a
// header row.
func (wb *workbook) buildMainSheet(hazards []*model.Hazard) error {
	index, err := wb.file.NewSheet(MainSheet)
	if err != nil {
		return goerr.Wrap(err, "failed to create main sheet")
	}
	wb.file.SetActiveSheet(index)

	for col, width := range mainColumnWidths {
		name, _ := excelize.ColumnNumberToName(col)
		if err := wb.file.SetColWidth(MainSheet, name, name, width); err != nil {
			return goerr.Wrap(err, "failed to set column width", goerr.V("column", name))
		}
	}
	if err := wb.writeHeader(MainSheet, mainHeaders); err != nil {
		return err
	}

	cursor := 2 // first sheet row after the header
	for i, h := range hazards {
		rows, err := wb.writeBlock(h, i+1, cursor)
		if err != nil {
			return goerr.Wrap(err, "failed to write hazard block",
				goerr.V("hazardID", h.ID), goerr.V("position", i))
		}
		cursor += rows
	}
	return nil
}

// writeBlock emits one hazard's block starting at the given sheet row and
// returns the number of rows consumed.
func (wb *workbook) writeBlock(h *model.Hazard, number, top int) (int, error) {
	layout := engine.Allocate(h)
	bottom := top + layout.Rows - 1

	// Block-spanning columns: number, hazard title, recommendations.
	if err := wb.setMerged(MainSheet, colNo, top, layout.Rows, strconv.Itoa(number)); err != nil {
		return 0, err
	}
	if err := wb.setMerged(MainSheet, colHazard, top, layout.Rows, hazardText(h)); err != nil {
		return 0, err
	}
	if err := wb.setMerged(MainSheet, colRecommendations, top, layout.Rows, recommendationText(h.Recommendations)); err != nil {
		return 0, err
	}

	if err := wb.writeCauseSide(h, layout, top); err != nil {
		return 0, err
	}
	if err := wb.writeConsequenceSide(h, layout, top); err != nil {
		return 0, err
	}

	// Uniform borders over the whole block, empty cells included.
	if err := wb.file.SetCellStyle(MainSheet,
		cellName(colNo, top), cellName(colRecommendations, bottom), wb.cellStyle); err != nil {
		return 0, goerr.Wrap(err, "failed to style block")
	}

	// Conditional coloring runs after text and merges: only rated
	// consequences whose cell resolves to a colored level are touched.
	if err := wb.colorRiskCells(h, layout, top); err != nil {
		return 0, err
	}
	return layout.Rows, nil
}

func (wb *workbook) writeCauseSide(h *model.Hazard, layout engine.BlockLayout, top int) error {
	for _, item := range layout.Causes.Items {
		cause := h.Causes[item.Index]
		if err := wb.setMerged(MainSheet, colCause, top+item.Start, item.Rows, cause.Text); err != nil {
			return err
		}
		if len(item.Measures) == 0 {
			// Placeholder slot: a single empty merged range over the item.
			if err := wb.setMerged(MainSheet, colPrevention, top+item.Start, item.Rows, ""); err != nil {
				return err
			}
			continue
		}
		for _, ms := range item.Measures {
			if err := wb.setMerged(MainSheet, colPrevention, top+ms.Start, ms.Rows,
				cause.Preventions[ms.Index].Text); err != nil {
				return err
			}
		}
	}
	return nil
}

func (wb *workbook) writeConsequenceSide(h *model.Hazard, layout engine.BlockLayout, top int) error {
	for _, item := range layout.Consequences.Items {
		cons := h.Consequences[item.Index]
		if err := wb.setMerged(MainSheet, colConsequence, top+item.Start, item.Rows, cons.Text); err != nil {
			return err
		}

		if len(item.Measures) == 0 {
			if err := wb.setMerged(MainSheet, colMitigation, top+item.Start, item.Rows, ""); err != nil {
				return err
			}
		} else {
			for _, ms := range item.Measures {
				if err := wb.setMerged(MainSheet, colMitigation, top+ms.Start, ms.Rows,
					cons.Mitigations[ms.Index].Text); err != nil {
					return err
				}
			}
		}

		risk := cons.Risk
		risk.Rate(wb.matrix)
		fields := []struct {
			col  int
			text string
		}{
			{colCategory, risk.Category.Label()},
			{colSeverity, risk.SeverityID.String()},
			{colLikelihood, risk.LikelihoodID.String()},
			{colRisk, risk.Score},
		}
		for _, f := range fields {
			if err := wb.setMerged(MainSheet, f.col, top+item.Start, item.Rows, f.text); err != nil {
				return err
			}
		}
	}
	return nil
}

func (wb *workbook) colorRiskCells(h *model.Hazard, layout engine.BlockLayout, top int) error {
	for _, item := range layout.Consequences.Items {
		risk := h.Consequences[item.Index].Risk
		level, ok := wb.matrix.Resolve(risk.SeverityID, risk.LikelihoodID)
		if !ok {
			continue
		}
		styleID, ok := wb.riskStyles[level.ID]
		if !ok {
			continue
		}
		start := cellName(colRisk, top+item.Start)
		end := cellName(colRisk, top+item.Start+item.Rows-1)
		if err := wb.file.SetCellStyle(MainSheet, start, end, styleID); err != nil {
			return goerr.Wrap(err, "failed to color risk cell",
				goerr.V("riskLevel", level.ID))
		}
	}
	return nil
}

// setMerged writes text at (col, row) and merges it down over rows.
func (wb *workbook) setMerged(sheet string, col, row, rows int, text string) error {
	start := cellName(col, row)
	if err := wb.file.SetCellStr(sheet, start, text); err != nil {
		return goerr.Wrap(err, "failed to set cell", goerr.V("cell", start))
	}
	if rows > 1 {
		end := cellName(col, row+rows-1)
		if err := wb.file.MergeCell(sheet, start, end); err != nil {
			return goerr.Wrap(err, "failed to merge cells",
				goerr.V("start", start), goerr.V("end", end))
		}
	}
	return nil
}

func (wb *workbook) writeHeader(sheet string, headers []string) error {
	for i, header := range headers {
		if err := wb.file.SetCellStr(sheet, cellName(i+1, 1), header); err != nil {
			return goerr.Wrap(err, "failed to write header", goerr.V("sheet", sheet))
		}
	}
	if err := wb.file.SetCellStyle(sheet,
		cellName(1, 1), cellName(len(headers), 1), wb.headerStyle); err != nil {
		return goerr.Wrap(err, "failed to style header", goerr.V("sheet", sheet))
	}
	return nil
}

func hazardText(h *model.Hazard) string {
	if h.Description == "" {
		return h.Title
	}
	return h.Title + "\n" + h.Description
}

func recommendationText(recs []model.Recommendation) string {
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		line := r.Action
		if r.Responsible != "" {
			line += " (" + r.Responsible + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
