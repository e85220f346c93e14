package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hazop-lab/hazgrid/pkg/domain/types"
)

func TestHazardID(t *testing.T) {
	t.Run("generated IDs are valid and unique", func(t *testing.T) {
		id1 := types.NewHazardID()
		id2 := types.NewHazardID()
		gt.NoError(t, id1.Validate())
		gt.NoError(t, id2.Validate())
		gt.Value(t, id1).NotEqual(id2)
	})

	t.Run("empty ID is invalid", func(t *testing.T) {
		gt.Error(t, types.HazardID("").Validate())
	})

	t.Run("non-UUID ID is invalid", func(t *testing.T) {
		gt.Error(t, types.HazardID("hazard-1").Validate())
	})
}

func TestSeverityCategory(t *testing.T) {
	t.Run("fixed set validates", func(t *testing.T) {
		for _, c := range types.SeverityCategories() {
			gt.NoError(t, c.Validate())
		}
	})

	t.Run("empty category is allowed", func(t *testing.T) {
		gt.NoError(t, types.SeverityCategory("").Validate())
	})

	t.Run("unknown category fails", func(t *testing.T) {
		gt.Error(t, types.SeverityCategory("finance").Validate())
	})
}

func TestLevelIDs(t *testing.T) {
	t.Run("matrix level IDs validate", func(t *testing.T) {
		gt.NoError(t, types.LikelihoodID("A").Validate())
		gt.NoError(t, types.SeverityID("3").Validate())
		gt.NoError(t, types.RiskLevelID("medium").Validate())
		gt.NoError(t, types.RiskLevelID("very-high").Validate())
	})

	t.Run("empty or malformed IDs fail", func(t *testing.T) {
		gt.Error(t, types.LikelihoodID("").Validate())
		gt.Error(t, types.SeverityID("a b").Validate())
		gt.Error(t, types.RiskLevelID("-high").Validate())
	})
}
