package engine_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/engine"
)

// hazardWith builds a hazard whose causes and consequences have the given
// measure counts.
func hazardWith(causeMeasures, consMeasures []int) *model.Hazard {
	h := model.NewHazard("test")
	for _, n := range causeMeasures {
		c := model.Cause{ID: "c", Preventions: make([]model.Measure, n)}
		h.Causes = append(h.Causes, c)
	}
	for _, n := range consMeasures {
		c := model.Consequence{ID: "x", Mitigations: make([]model.Measure, n)}
		h.Consequences = append(h.Consequences, c)
	}
	return h
}

func TestBlockRows(t *testing.T) {
	t.Run("ragged sides take the larger total", func(t *testing.T) {
		// causes=[A(2), B(1)] -> 3; consequences=[X(1), Y(3)] -> 4
		h := hazardWith([]int{2, 1}, []int{1, 3})
		gt.Number(t, engine.PreventionRows(h)).Equal(3)
		gt.Number(t, engine.MitigationRows(h)).Equal(4)
		gt.Number(t, engine.BlockRows(h)).Equal(4)
	})

	t.Run("items without measures still need one row", func(t *testing.T) {
		h := hazardWith([]int{0, 0, 0}, []int{0})
		gt.Number(t, engine.PreventionRows(h)).Equal(3)
		gt.Number(t, engine.BlockRows(h)).Equal(3)
	})

	t.Run("an empty side contributes zero, not one", func(t *testing.T) {
		h := hazardWith(nil, []int{0})
		gt.Number(t, engine.PreventionRows(h)).Equal(0)
		gt.Number(t, engine.MitigationRows(h)).Equal(1)
		gt.Number(t, engine.BlockRows(h)).Equal(1)
	})

	t.Run("a hazard with nothing at all still renders one row", func(t *testing.T) {
		h := hazardWith(nil, nil)
		gt.Number(t, engine.BlockRows(h)).Equal(1)
	})
}
