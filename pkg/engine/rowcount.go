// Package engine implements the alignment engine: it reconciles a hazard's
// ragged cause/consequence/measure lists into a single rectangular grid of
// rows, and allocates each item a deterministic row range within that grid.
// Both the interactive table and the spreadsheet export consume the same
// allocation, so the two targets can never diverge on row math.
package engine

import "github.com/hazop-lab/hazgrid/pkg/domain/model"

// BlockRows computes the total number of grid rows a hazard's block must
// occupy. Each cause or consequence needs at least one row even with no
// measures, but a side with no items at all contributes zero, not one.
// This asymmetry determines whether a hazard with zero causes but several
// consequences still renders a multi-row block correctly.
func BlockRows(h *model.Hazard) int {
	prevention := PreventionRows(h)
	mitigation := MitigationRows(h)

	rows := prevention
	if mitigation > rows {
		rows = mitigation
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// PreventionRows is the row total of the cause side: the sum over causes of
// max(len(preventions), 1), or 0 when there are no causes.
func PreventionRows(h *model.Hazard) int {
	counts := make([]int, len(h.Causes))
	for i, c := range h.Causes {
		counts[i] = len(c.Preventions)
	}
	return sideRows(counts)
}

// MitigationRows is the row total of the consequence side, with the same
// per-item minimum of one row.
func MitigationRows(h *model.Hazard) int {
	counts := make([]int, len(h.Consequences))
	for i, c := range h.Consequences {
		counts[i] = len(c.Mitigations)
	}
	return sideRows(counts)
}

func sideRows(measureCounts []int) int {
	total := 0
	for _, n := range measureCounts {
		total += naturalSpan(n)
	}
	return total
}

// naturalSpan is the row span an item needs for its own measures.
func naturalSpan(measureCount int) int {
	if measureCount < 1 {
		return 1
	}
	return measureCount
}
