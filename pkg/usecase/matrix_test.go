package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
)

func TestMatrixUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("get returns the default matrix before any store", func(t *testing.T) {
		uc := newUseCases(t)
		m := gt.R1(uc.Matrix.Get(ctx)).NoError(t)
		gt.Array(t, m.Likelihood).Length(5)
		gt.Array(t, m.Severity).Length(5)
		gt.Number(t, len(m.Cells)).Equal(25)
	})

	t.Run("update regenerates cells from the new scales", func(t *testing.T) {
		uc := newUseCases(t)
		m := model.DefaultRiskMatrix()
		m.Likelihood = m.Likelihood[:3]
		updated := gt.R1(uc.Matrix.Update(ctx, m)).NoError(t)
		gt.Number(t, len(updated.Cells)).Equal(15)

		stored := gt.R1(uc.Matrix.Get(ctx)).NoError(t)
		gt.Number(t, len(stored.Cells)).Equal(15)
	})

	t.Run("update rejects empty scales", func(t *testing.T) {
		uc := newUseCases(t)
		m := model.DefaultRiskMatrix()
		m.Severity = nil
		_, err := uc.Matrix.Update(ctx, m)
		gt.Error(t, err)
	})

	t.Run("config export and import reproduce the mapping", func(t *testing.T) {
		uc := newUseCases(t)
		original := gt.R1(uc.Matrix.Get(ctx)).NoError(t)

		data := gt.R1(uc.Matrix.ExportConfig(ctx)).NoError(t)
		imported := gt.R1(uc.Matrix.ImportConfig(ctx, data)).NoError(t)

		gt.Number(t, len(imported.Cells)).Equal(len(original.Cells))
		for key, id := range original.Cells {
			gt.Value(t, imported.Cells[key]).Equal(id)
		}
	})

	t.Run("import without cells falls back to the default rule", func(t *testing.T) {
		uc := newUseCases(t)
		data := []byte(`{
			"likelihoodDescriptions": [{"id": "L", "label": "L"}, {"id": "H", "label": "H"}],
			"severityLevels": [{"id": "1", "label": "1"}, {"id": "2", "label": "2"}],
			"riskLevelDescriptions": [
				{"id": "low", "label": "Low"},
				{"id": "medium", "label": "Medium"},
				{"id": "high", "label": "High"}
			]
		}`)
		imported := gt.R1(uc.Matrix.ImportConfig(ctx, data)).NoError(t)

		gt.Number(t, len(imported.Cells)).Equal(4)
		gt.Value(t, imported.Cells[model.CellKey("H", "2")]).Equal("high")
		gt.Value(t, imported.Cells[model.CellKey("L", "1")]).Equal("low")
	})
}
