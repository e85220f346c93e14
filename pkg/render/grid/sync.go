package grid

// HeightSync runs the two-pass measure-then-stretch cycle that makes the
// ragged segments of a block line up visually. The cycle must rerun
// whenever the block's content changes, the viewport resizes, or late
// loading (fonts, images) could change natural heights; callers coalesce
// those triggers.
type HeightSync struct {
	surface Surface
}

// NewHeightSync creates a sync engine over a measurable surface.
func NewHeightSync(surface Surface) *HeightSync {
	return &HeightSync{surface: surface}
}

// Sync measures every segment's natural height and forces the members of
// each row-aligned set to a common height.
//
// Pass 1 (measure): each segment's natural height is divided equally over
// the rows it spans; every grid row takes the maximum share of the
// segments aligned there. Pass 2 (stretch): each segment is forced to the
// sum of its rows' heights. Previous forced heights are cleared first to
// avoid monotonic growth across cycles.
func (hs *HeightSync) Sync(b *Block) {
	b.clearHeights()
	if b.Layout.Rows <= 0 {
		return
	}

	rows := make([]int, b.Layout.Rows)
	for i := range rows {
		rows[i] = 1
	}

	for _, seg := range b.Segments {
		natural := hs.surface.MeasureHeight(seg.Text, b.Widths[seg.Column])
		share := ceilDiv(natural, seg.Span.Rows)
		for r := seg.Span.Start; r < seg.Span.End(); r++ {
			if share > rows[r] {
				rows[r] = share
			}
		}
	}

	for _, seg := range b.Segments {
		total := 0
		for r := seg.Span.Start; r < seg.Span.End(); r++ {
			total += rows[r]
		}
		seg.Height = total
	}
	b.RowHeights = rows
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
