package grid

import (
	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/engine"
)

// BuildBlock projects a hazard and its allocation onto segments. Risk
// scores are resolved from the matrix here: the cached score on the model
// is never trusted.
func BuildBlock(h *model.Hazard, m *model.RiskMatrix, widths ColumnWidths) *Block {
	layout := engine.Allocate(h)
	b := &Block{
		Layout: layout,
		Title:  h.Title,
		Widths: widths,
	}

	buildCauseSide(b, h, layout)
	buildConsequenceSide(b, h, m, layout)
	return b
}

func buildCauseSide(b *Block, h *model.Hazard, layout engine.BlockLayout) {
	if layout.Causes.Empty() {
		// Filler row spanning the whole block; no merge-worthy content.
		b.add(KindFiller, ColCause, engine.Span{Start: 0, Rows: layout.Rows}, "")
		b.add(KindFiller, ColPrevention, engine.Span{Start: 0, Rows: layout.Rows}, "")
		return
	}

	for _, item := range layout.Causes.Items {
		cause := h.Causes[item.Index]
		b.add(KindCause, ColCause, item.Span, cause.Text)

		if len(item.Measures) == 0 {
			// Placeholder slot (an "add" affordance) over the item's range;
			// it contributes no persisted measure.
			b.add(KindPreventionSlot, ColPrevention, item.Span, "")
			continue
		}
		for _, ms := range item.Measures {
			b.add(KindPrevention, ColPrevention, ms.Span, cause.Preventions[ms.Index].Text)
		}
	}
}

func buildConsequenceSide(b *Block, h *model.Hazard, m *model.RiskMatrix, layout engine.BlockLayout) {
	if layout.Consequences.Empty() {
		for col := ColConsequence; col <= ColRiskScore; col++ {
			b.add(KindFiller, col, engine.Span{Start: 0, Rows: layout.Rows}, "")
		}
		return
	}

	for _, item := range layout.Consequences.Items {
		cons := h.Consequences[item.Index]
		b.add(KindConsequence, ColConsequence, item.Span, cons.Text)

		if len(item.Measures) == 0 {
			b.add(KindMitigationSlot, ColMitigation, item.Span, "")
		} else {
			for _, ms := range item.Measures {
				b.add(KindMitigation, ColMitigation, ms.Span, cons.Mitigations[ms.Index].Text)
			}
		}

		// Risk fields inherit the consequence's span; they are never
		// sub-divided by measures.
		risk := cons.Risk
		risk.Rate(m)
		b.add(KindRiskCategory, ColRiskCategory, item.Span, risk.Category.Label())
		b.add(KindRiskSeverity, ColRiskSeverity, item.Span, risk.SeverityID.String())
		b.add(KindRiskLikelihood, ColRiskLikelihood, item.Span, risk.LikelihoodID.String())
		b.add(KindRiskScore, ColRiskScore, item.Span, risk.Score)
	}
}

func (b *Block) add(kind Kind, col Column, span engine.Span, text string) {
	b.Segments = append(b.Segments, &Segment{
		Kind:   kind,
		Column: col,
		Span:   span,
		Text:   text,
	})
}
