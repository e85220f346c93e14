package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/domain/types"
)

func TestDefaultRule(t *testing.T) {
	t.Run("5x5 scenario: severity 3 x likelihood D is medium", func(t *testing.T) {
		m := model.DefaultRiskMatrix()

		// ratio = (3+2)/(4+4) = 0.625
		level, ok := m.Resolve("3", "D")
		gt.Bool(t, ok).True()
		gt.Value(t, level.ID).Equal(types.RiskLevelID("medium"))
	})

	t.Run("corners of the default matrix", func(t *testing.T) {
		m := model.DefaultRiskMatrix()

		low, ok := m.Resolve("1", "A")
		gt.Bool(t, ok).True()
		gt.Value(t, low.ID).Equal(types.RiskLevelID("low"))

		high, ok := m.Resolve("5", "E")
		gt.Bool(t, ok).True()
		gt.Value(t, high.ID).Equal(types.RiskLevelID("high"))
	})

	t.Run("only list order affects assignment, not labels", func(t *testing.T) {
		base := model.DefaultRiskMatrix()

		relabeled := base.Clone()
		for i := range relabeled.Likelihood {
			relabeled.Likelihood[i].Label = "renamed"
			relabeled.Likelihood[i].Description = "renamed"
		}
		for i := range relabeled.Severity {
			relabeled.Severity[i].Label = "renamed"
		}
		relabeled.Rebuild()

		for key, want := range base.Cells {
			gt.Value(t, relabeled.Cells[key]).Equal(want)
		}
	})

	t.Run("single-cell matrix resolves to the lowest level", func(t *testing.T) {
		m := &model.RiskMatrix{
			Likelihood: []model.LikelihoodLevel{{ID: "A"}},
			Severity:   []model.SeverityLevel{{ID: "1"}},
			Levels: []model.RiskLevel{
				{ID: "low", Label: "Low"},
				{ID: "medium", Label: "Medium"},
				{ID: "high", Label: "High"},
			},
		}
		m.Rebuild()

		level, ok := m.Resolve("1", "A")
		gt.Bool(t, ok).True()
		gt.Value(t, level.ID).Equal(types.RiskLevelID("low"))
	})

	t.Run("fewer than three levels clamps the ordinal", func(t *testing.T) {
		m := model.DefaultRiskMatrix()
		m.Levels = m.Levels[:2] // low, medium
		m.Rebuild()

		level, ok := m.Resolve("5", "E")
		gt.Bool(t, ok).True()
		gt.Value(t, level.ID).Equal(types.RiskLevelID("medium"))
	})
}

func TestResolve(t *testing.T) {
	t.Run("unset inputs resolve to absent", func(t *testing.T) {
		m := model.DefaultRiskMatrix()

		_, ok := m.Resolve("", "A")
		gt.Bool(t, ok).False()
		_, ok = m.Resolve("3", "")
		gt.Bool(t, ok).False()
	})

	t.Run("unknown cell resolves to absent", func(t *testing.T) {
		m := model.DefaultRiskMatrix()

		_, ok := m.Resolve("9", "Z")
		gt.Bool(t, ok).False()
	})
}

func TestApplyCells(t *testing.T) {
	t.Run("custom cells override individual entries", func(t *testing.T) {
		m := model.DefaultRiskMatrix()
		m.ApplyCells(map[string]types.RiskLevelID{
			model.CellKey("A", "1"): "high",
		})

		level, ok := m.Resolve("1", "A")
		gt.Bool(t, ok).True()
		gt.Value(t, level.ID).Equal(types.RiskLevelID("high"))
	})

	t.Run("cells with unknown level IDs are dropped silently", func(t *testing.T) {
		m := model.DefaultRiskMatrix()
		m.ApplyCells(map[string]types.RiskLevelID{
			model.CellKey("A", "1"): "catastrophic",
		})

		level, ok := m.Resolve("1", "A")
		gt.Bool(t, ok).True()
		gt.Value(t, level.ID).Equal(types.RiskLevelID("low"))
	})

	t.Run("rebuild discards custom overrides", func(t *testing.T) {
		m := model.DefaultRiskMatrix()
		m.ApplyCells(map[string]types.RiskLevelID{
			model.CellKey("A", "1"): "high",
		})
		m.Rebuild()

		level, ok := m.Resolve("1", "A")
		gt.Bool(t, ok).True()
		gt.Value(t, level.ID).Equal(types.RiskLevelID("low"))
	})
}

func TestRiskRate(t *testing.T) {
	t.Run("cached score follows the matrix", func(t *testing.T) {
		m := model.DefaultRiskMatrix()
		risk := model.Risk{SeverityID: "5", LikelihoodID: "E", Score: "stale"}
		risk.Rate(m)
		gt.Value(t, risk.Score).Equal("High")
	})

	t.Run("unrated risk degrades to empty score", func(t *testing.T) {
		m := model.DefaultRiskMatrix()
		risk := model.Risk{Score: "stale"}
		risk.Rate(m)
		gt.Value(t, risk.Score).Equal("")
	})
}
