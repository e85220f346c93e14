package engine

import (
	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/domain/types"
)

// Span is a contiguous row range within a block: Start is the 0-based row
// offset, Rows the number of rows occupied.
type Span struct {
	Start int `json:"start"`
	Rows  int `json:"rows"`
}

// End returns the first row after the span.
func (s Span) End() int {
	return s.Start + s.Rows
}

// MeasureSpan is the row range of one measure within its owning item.
type MeasureSpan struct {
	Index int `json:"index"`
	Span
}

// ItemSpan is the row range of one cause or consequence, plus the row
// ranges of its measures. An item with no measures has an empty Measures
// list; renderers show a single placeholder slot over the item's whole
// range instead.
type ItemSpan struct {
	Index int `json:"index"`
	Span
	Measures []MeasureSpan `json:"measures"`
}

// SideLayout is the allocation for one side (causes or consequences) of a
// block. An empty side has no entries; callers render one filler row
// spanning the whole block with no merge-worthy content.
type SideLayout struct {
	Items []ItemSpan `json:"items"`
}

// Empty reports whether the side has no items.
func (s SideLayout) Empty() bool {
	return len(s.Items) == 0
}

// BlockLayout is the complete, renderer-agnostic row allocation for one
// hazard's block. The risk fields of a consequence inherit the ItemSpan of
// their owning consequence; they are never sub-divided by measures.
type BlockLayout struct {
	HazardID     types.HazardID `json:"hazardId"`
	Rows         int            `json:"rows"`
	Causes       SideLayout     `json:"causes"`
	Consequences SideLayout     `json:"consequences"`
}

// Allocate computes the block layout for a hazard. The allocation is
// deterministic: it depends only on the measure counts of the hazard's
// lists, never on rendered content.
func Allocate(h *model.Hazard) BlockLayout {
	rows := BlockRows(h)

	causeCounts := make([]int, len(h.Causes))
	for i, c := range h.Causes {
		causeCounts[i] = len(c.Preventions)
	}
	consCounts := make([]int, len(h.Consequences))
	for i, c := range h.Consequences {
		consCounts[i] = len(c.Mitigations)
	}

	return BlockLayout{
		HazardID:     h.ID,
		Rows:         rows,
		Causes:       allocateSide(causeCounts, rows),
		Consequences: allocateSide(consCounts, rows),
	}
}

// allocateSide walks the items of one side in order, assigning each its
// natural span (max of measure count and 1) except the last item, which
// absorbs all rows not consumed by its siblings. Within an item every
// measure gets one row except the last, which absorbs the item's surplus.
func allocateSide(measureCounts []int, blockRows int) SideLayout {
	if len(measureCounts) == 0 {
		return SideLayout{Items: []ItemSpan{}}
	}

	items := make([]ItemSpan, 0, len(measureCounts))
	offset := 0
	for i, count := range measureCounts {
		span := naturalSpan(count)
		if i == len(measureCounts)-1 {
			// Last-item expansion: the final item takes every remaining row,
			// which can exceed its natural span.
			span = blockRows - offset
		}

		items = append(items, ItemSpan{
			Index:    i,
			Span:     Span{Start: offset, Rows: span},
			Measures: allocateMeasures(count, offset, span),
		})
		offset += span
	}
	return SideLayout{Items: items}
}

// allocateMeasures assigns each measure a single row, except the last
// measure which absorbs the surplus left by the last-item expansion.
func allocateMeasures(count, itemStart, itemSpan int) []MeasureSpan {
	measures := make([]MeasureSpan, 0, count)
	for i := 0; i < count; i++ {
		rows := 1
		if i == count-1 {
			rows = itemSpan - i
		}
		measures = append(measures, MeasureSpan{
			Index: i,
			Span:  Span{Start: itemStart + i, Rows: rows},
		})
	}
	return measures
}
