package grid_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/render/grid"
)

// linesSurface measures height as the number of newline-separated lines,
// ignoring width. Deterministic stand-in for a real display surface.
var linesSurface = grid.SurfaceFunc(func(text string, width int) int {
	if text == "" {
		return 1
	}
	lines := 1
	for _, r := range text {
		if r == '\n' {
			lines++
		}
	}
	return lines
})

func twoByTwoHazard() *model.Hazard {
	h := model.NewHazard("test")
	h.Causes = []model.Cause{
		{ID: "c1", Text: "cause 1", Preventions: []model.Measure{
			{ID: "p1", Text: "short"},
			{ID: "p2", Text: "short"},
		}},
		{ID: "c2", Text: "cause 2", Preventions: []model.Measure{
			{ID: "p3", Text: "short"},
		}},
	}
	h.Consequences = []model.Consequence{
		{ID: "x1", Text: "cons 1", Mitigations: []model.Measure{
			{ID: "m1", Text: "short"},
		}},
		{ID: "x2", Text: "cons 2", Mitigations: []model.Measure{
			{ID: "m2", Text: "short"},
			{ID: "m3", Text: "short"},
			{ID: "m4", Text: "short"},
		}},
	}
	return h
}

func TestHeightSync(t *testing.T) {
	matrix := model.DefaultRiskMatrix()
	widths := grid.DefaultColumnWidths()

	t.Run("uniform content gives uniform rows", func(t *testing.T) {
		b := grid.BuildBlock(twoByTwoHazard(), matrix, widths)
		grid.NewHeightSync(linesSurface).Sync(b)

		gt.Array(t, b.RowHeights).Length(4)
		for _, h := range b.RowHeights {
			gt.Number(t, h).Equal(1)
		}
	})

	t.Run("a tall segment stretches everything aligned at its rows", func(t *testing.T) {
		h := twoByTwoHazard()
		h.Consequences[0].Mitigations[0].Text = "one\ntwo\nthree" // 3 lines at row 0
		b := grid.BuildBlock(h, matrix, widths)
		grid.NewHeightSync(linesSurface).Sync(b)

		gt.Number(t, b.RowHeights[0]).Equal(3)
		gt.Number(t, b.RowHeights[1]).Equal(1)

		// Everything covering row 0 ends at a consistent height.
		for _, seg := range b.SegmentsAt(0) {
			if seg.Span.Rows == 1 {
				gt.Number(t, seg.Height).Equal(3)
			}
		}
	})

	t.Run("multi-row segments divide their natural height equally", func(t *testing.T) {
		h := twoByTwoHazard()
		// Cause 1 spans rows 0-1; 8 natural lines -> 4 per row.
		h.Causes[0].Text = "1\n2\n3\n4\n5\n6\n7\n8"
		b := grid.BuildBlock(h, matrix, widths)
		grid.NewHeightSync(linesSurface).Sync(b)

		gt.Number(t, b.RowHeights[0]).Equal(4)
		gt.Number(t, b.RowHeights[1]).Equal(4)

		// The cause segment is forced to exactly its two rows' total.
		for _, seg := range b.SegmentsAt(0) {
			if seg.Kind == grid.KindCause {
				gt.Number(t, seg.Height).Equal(8)
			}
		}
	})

	t.Run("segment heights sum consistently on both sides", func(t *testing.T) {
		h := twoByTwoHazard()
		h.Causes[1].Text = "a\nb\nc\nd"
		h.Consequences[1].Text = "x\ny"
		b := grid.BuildBlock(h, matrix, widths)
		grid.NewHeightSync(linesSurface).Sync(b)

		total := 0
		for _, rh := range b.RowHeights {
			total += rh
		}

		// Per column, spans tile the block, so column heights equal the
		// block total.
		byColumn := map[grid.Column]int{}
		for _, seg := range b.Segments {
			byColumn[seg.Column] += seg.Height
		}
		gt.Number(t, byColumn[grid.ColCause]).Equal(total)
		gt.Number(t, byColumn[grid.ColPrevention]).Equal(total)
		gt.Number(t, byColumn[grid.ColConsequence]).Equal(total)
		gt.Number(t, byColumn[grid.ColMitigation]).Equal(total)
	})

	t.Run("re-sync clears previous forced heights", func(t *testing.T) {
		h := twoByTwoHazard()
		h.Consequences[0].Mitigations[0].Text = "one\ntwo\nthree"
		b := grid.BuildBlock(h, matrix, widths)

		sync := grid.NewHeightSync(linesSurface)
		sync.Sync(b)
		gt.Number(t, b.RowHeights[0]).Equal(3)

		// Content shrinks; a re-run must shrink heights, not keep growing.
		for _, seg := range b.Segments {
			if seg.Text == "one\ntwo\nthree" {
				seg.Text = "one"
			}
		}
		sync.Sync(b)
		gt.Number(t, b.RowHeights[0]).Equal(1)
	})
}

func TestBuildBlock(t *testing.T) {
	matrix := model.DefaultRiskMatrix()
	widths := grid.DefaultColumnWidths()

	t.Run("risk fields inherit the consequence span", func(t *testing.T) {
		h := twoByTwoHazard()
		h.Consequences[1].Risk = model.Risk{
			Category:     "people",
			SeverityID:   "3",
			LikelihoodID: "D",
		}
		b := grid.BuildBlock(h, matrix, widths)

		var scores []*grid.Segment
		for _, seg := range b.Segments {
			if seg.Kind == grid.KindRiskScore {
				scores = append(scores, seg)
			}
		}
		gt.Array(t, scores).Length(2)
		// Consequence 2 spans rows 1-3; its risk fields do too.
		gt.Number(t, scores[1].Span.Start).Equal(1)
		gt.Number(t, scores[1].Span.Rows).Equal(3)
	})

	t.Run("risk score text is recomputed from the matrix", func(t *testing.T) {
		h := twoByTwoHazard()
		h.Consequences[0].Risk = model.Risk{
			SeverityID:   "3",
			LikelihoodID: "D",
			Score:        "stale label",
		}
		b := grid.BuildBlock(h, matrix, widths)

		found := false
		for _, seg := range b.Segments {
			if seg.Kind == grid.KindRiskScore && seg.Span.Start == 0 {
				gt.Value(t, seg.Text).Equal("Medium")
				found = true
			}
		}
		gt.Bool(t, found).True()
	})

	t.Run("zero-measure item gets a placeholder slot", func(t *testing.T) {
		h := model.NewHazard("test")
		h.Causes = []model.Cause{{ID: "c1", Text: "bare cause"}}
		h.Consequences = []model.Consequence{{ID: "x1", Text: "bare cons"}}
		b := grid.BuildBlock(h, matrix, widths)

		kinds := map[grid.Kind]int{}
		for _, seg := range b.Segments {
			kinds[seg.Kind]++
		}
		gt.Number(t, kinds[grid.KindPreventionSlot]).Equal(1)
		gt.Number(t, kinds[grid.KindMitigationSlot]).Equal(1)
		gt.Number(t, kinds[grid.KindPrevention]).Equal(0)
	})

	t.Run("empty side renders fillers across the block", func(t *testing.T) {
		h := model.NewHazard("test")
		h.Consequences = []model.Consequence{{ID: "x1", Text: "only side"}}
		b := grid.BuildBlock(h, matrix, widths)

		var fillers []*grid.Segment
		for _, seg := range b.Segments {
			if seg.Kind == grid.KindFiller {
				fillers = append(fillers, seg)
			}
		}
		gt.Array(t, fillers).Length(2) // cause + prevention columns
		for _, f := range fillers {
			gt.Number(t, f.Span.Rows).Equal(b.Layout.Rows)
		}
	})
}
