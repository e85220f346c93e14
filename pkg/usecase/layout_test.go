package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
)

func TestLayoutUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("layouts follow the hazard list", func(t *testing.T) {
		uc := newUseCases(t)
		h := model.NewHazard("Pump overpressure")
		h.Causes = []model.Cause{
			{ID: "c1", Text: "a", Preventions: []model.Measure{{ID: "p1"}, {ID: "p2"}}},
			{ID: "c2", Text: "b", Preventions: []model.Measure{{ID: "p3"}}},
		}
		h.Consequences = []model.Consequence{
			{ID: "x1", Text: "x", Mitigations: []model.Measure{{ID: "m1"}}},
			{ID: "x2", Text: "y", Mitigations: []model.Measure{{ID: "m2"}, {ID: "m3"}, {ID: "m4"}}},
		}
		created := gt.R1(uc.Hazard.Create(ctx, h)).NoError(t)

		layouts := gt.R1(uc.Layout.Layouts(ctx)).NoError(t)
		gt.Array(t, layouts).Length(1)
		gt.Value(t, layouts[0].HazardID).Equal(created.ID)
		gt.Number(t, layouts[0].Rows).Equal(4)
	})

	t.Run("mutations invalidate the cache", func(t *testing.T) {
		uc := newUseCases(t)
		gt.R1(uc.Hazard.Create(ctx, model.NewHazard("first"))).NoError(t)
		gt.Array(t, gt.R1(uc.Layout.Layouts(ctx)).NoError(t)).Length(1)

		gt.R1(uc.Hazard.Create(ctx, model.NewHazard("second"))).NoError(t)
		gt.Array(t, gt.R1(uc.Layout.Layouts(ctx)).NoError(t)).Length(2)
	})

	t.Run("empty store yields no layouts", func(t *testing.T) {
		uc := newUseCases(t)
		layouts := gt.R1(uc.Layout.Layouts(ctx)).NoError(t)
		gt.Array(t, layouts).Length(0)
	})
}

func TestExportUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("workbook serializes the store", func(t *testing.T) {
		uc := newUseCases(t)
		gt.R1(uc.Hazard.Create(ctx, model.NewHazard("Pump overpressure"))).NoError(t)

		buf := gt.R1(uc.Export.Workbook(ctx)).NoError(t)
		gt.Number(t, buf.Len()).Greater(0)
	})
}
