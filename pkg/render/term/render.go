package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/render/grid"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, true, false)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	slotStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Faint(true)
)

var columnHeaders = map[grid.Column]string{
	grid.ColCause:          "Cause",
	grid.ColPrevention:     "Prevention",
	grid.ColConsequence:    "Consequence",
	grid.ColMitigation:     "Mitigation",
	grid.ColRiskCategory:   "Category",
	grid.ColRiskSeverity:   "Sev",
	grid.ColRiskLikelihood: "Lik",
	grid.ColRiskScore:      "Risk",
}

// Renderer draws synchronized blocks as terminal text. Column heights are
// already aligned by the sync pass, so each column can be stacked
// independently and joined horizontally.
type Renderer struct {
	widths grid.ColumnWidths
	sync   *grid.HeightSync
	matrix *model.RiskMatrix
}

// NewRenderer builds a terminal renderer over the given matrix, which
// supplies risk-level colors.
func NewRenderer(matrix *model.RiskMatrix) *Renderer {
	return &Renderer{
		widths: grid.DefaultColumnWidths(),
		sync:   grid.NewHeightSync(Surface{}),
		matrix: matrix,
	}
}

// RenderHazard lays out one hazard and renders it as a bordered block.
func (r *Renderer) RenderHazard(h *model.Hazard) string {
	b := grid.BuildBlock(h, r.matrix, r.widths)
	r.sync.Sync(b)
	return r.renderBlock(b)
}

// RenderAll renders every hazard, numbered, separated by blank lines.
func (r *Renderer) RenderAll(hazards []*model.Hazard) string {
	var out []string
	for _, h := range hazards {
		out = append(out, r.RenderHazard(h))
	}
	return strings.Join(out, "\n\n")
}

func (r *Renderer) renderBlock(b *grid.Block) string {
	columns := make([]string, 0, len(columnHeaders))
	for col := grid.ColCause; col <= grid.ColRiskScore; col++ {
		columns = append(columns, r.renderColumn(b, col))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	title := titleStyle.Width(lipgloss.Width(body)).Render(b.Title)
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

// renderColumn stacks a column's header and its segments top to bottom.
// Segments tile the block's rows, so stacking in span order reproduces the
// grid without tracking rows explicitly.
func (r *Renderer) renderColumn(b *grid.Block, col grid.Column) string {
	width := b.Widths[col]
	parts := []string{headerStyle.Width(width).Render(columnHeaders[col])}

	segments := make([]*grid.Segment, 0, len(b.Segments))
	for _, seg := range b.Segments {
		if seg.Column == col {
			segments = append(segments, seg)
		}
	}

	for _, seg := range segments {
		parts = append(parts, r.renderSegment(seg, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) renderSegment(seg *grid.Segment, width int) string {
	style := cellStyle
	text := seg.Text

	switch seg.Kind {
	case grid.KindPreventionSlot, grid.KindMitigationSlot:
		style = slotStyle
		text = "(none)"
	case grid.KindFiller:
		text = ""
	case grid.KindRiskScore:
		if level, ok := r.matrix.LevelByLabel(seg.Text); ok && level.Color != "" {
			style = style.Foreground(lipgloss.Color(level.Color)).Bold(true)
		}
	}

	return style.Width(width).Height(seg.Height).Render(text)
}
