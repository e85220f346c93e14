// Package grid projects a block allocation onto renderer-agnostic segments
// and synchronizes their heights from measured content. It never touches a
// display surface directly: natural content sizes come in through the
// Surface capability, so the sync logic is testable with mocked
// measurements.
package grid

import "github.com/hazop-lab/hazgrid/pkg/engine"

// Kind identifies what a segment renders.
type Kind int

const (
	KindCause Kind = iota
	KindPrevention
	KindPreventionSlot
	KindConsequence
	KindMitigation
	KindMitigationSlot
	KindRiskCategory
	KindRiskSeverity
	KindRiskLikelihood
	KindRiskScore
	KindFiller
)

// Column identifies the on-screen column a segment belongs to. Column
// membership determines the width used for measurement.
type Column int

const (
	ColCause Column = iota
	ColPrevention
	ColConsequence
	ColMitigation
	ColRiskCategory
	ColRiskSeverity
	ColRiskLikelihood
	ColRiskScore
	colCount
)

// Segment is one rendered cell of a block: a cause, a measure, a risk field
// or a filler, pinned to the row range the allocator assigned it.
type Segment struct {
	Kind   Kind
	Column Column
	Span   engine.Span
	Text   string

	// Height is the forced height in surface units, assigned by the sync
	// pass. Zero means not yet measured.
	Height int
}

// ColumnWidths gives each column its rendering width in surface units.
type ColumnWidths [colCount]int

// DefaultColumnWidths is a workable terminal layout.
func DefaultColumnWidths() ColumnWidths {
	return ColumnWidths{
		ColCause:          24,
		ColPrevention:     24,
		ColConsequence:    24,
		ColMitigation:     24,
		ColRiskCategory:   12,
		ColRiskSeverity:   4,
		ColRiskLikelihood: 4,
		ColRiskScore:      8,
	}
}

// Block is the interactive-rendering form of one hazard: its segments plus
// the synchronized per-row heights.
type Block struct {
	Layout     engine.BlockLayout
	Title      string
	Segments   []*Segment
	RowHeights []int
	Widths     ColumnWidths
}

// SegmentsAt returns the segments whose row range covers the given row.
// These are the segments the sync pass aligns at that position.
func (b *Block) SegmentsAt(row int) []*Segment {
	var result []*Segment
	for _, seg := range b.Segments {
		if seg.Span.Start <= row && row < seg.Span.End() {
			result = append(result, seg)
		}
	}
	return result
}

// clearHeights resets all forced heights before a re-measurement, so
// repeated sync cycles never grow monotonically.
func (b *Block) clearHeights() {
	for _, seg := range b.Segments {
		seg.Height = 0
	}
	b.RowHeights = nil
}
