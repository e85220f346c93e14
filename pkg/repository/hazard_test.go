package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hazop-lab/hazgrid/pkg/domain/interfaces"
	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/repository"
	"github.com/hazop-lab/hazgrid/pkg/repository/badger"
	"github.com/hazop-lab/hazgrid/pkg/repository/memory"
)

// eachBackend runs the suite against every repository implementation.
func eachBackend(t *testing.T, test func(t *testing.T, repo interfaces.Repository)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		repo := memory.New()
		defer func() {
			gt.NoError(t, repo.Close())
		}()
		test(t, repo)
	})

	t.Run("badger", func(t *testing.T) {
		repo, err := badger.NewInMemory()
		gt.NoError(t, err).Required()
		defer func() {
			gt.NoError(t, repo.Close())
		}()
		test(t, repo)
	})
}

func TestHazardRepository_CreateAndGet(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo interfaces.Repository) {
		ctx := context.Background()

		h := model.NewHazard("Tank overfill")
		h.Causes = append(h.Causes, model.Cause{ID: "00000000-0000-0000-0000-00000000000a", Text: "Level gauge failure"})

		created, err := repo.Hazard().Create(ctx, h)
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).Equal(h.ID)
		gt.Bool(t, created.CreatedAt.IsZero()).False()

		retrieved, err := repo.Hazard().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Title).Equal("Tank overfill")
		gt.Array(t, retrieved.Causes).Length(1)
	})
}

func TestHazardRepository_GeneratesMissingID(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo interfaces.Repository) {
		ctx := context.Background()

		created, err := repo.Hazard().Create(ctx, &model.Hazard{Title: "no id"})
		gt.NoError(t, err).Required()
		gt.NoError(t, created.ID.Validate())
	})
}

func TestHazardRepository_ListPreservesOrder(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo interfaces.Repository) {
		ctx := context.Background()

		titles := []string{"first", "second", "third"}
		for _, title := range titles {
			_, err := repo.Hazard().Create(ctx, model.NewHazard(title))
			gt.NoError(t, err).Required()
		}

		listed, err := repo.Hazard().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, listed).Length(3)
		for i, title := range titles {
			gt.Value(t, listed[i].Title).Equal(title)
		}
	})
}

func TestHazardRepository_Update(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo interfaces.Repository) {
		ctx := context.Background()

		created, err := repo.Hazard().Create(ctx, model.NewHazard("before"))
		gt.NoError(t, err).Required()

		created.Title = "after"
		created.Consequences = append(created.Consequences, model.Consequence{
			ID:   "00000000-0000-0000-0000-00000000000b",
			Text: "Spill",
			Risk: model.Risk{SeverityID: "3", LikelihoodID: "D"},
		})

		updated, err := repo.Hazard().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Title).Equal("after")
		gt.Value(t, updated.CreatedAt).Equal(created.CreatedAt)

		retrieved, err := repo.Hazard().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, retrieved.Consequences).Length(1)
	})
}

func TestHazardRepository_UpdateMissing(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo interfaces.Repository) {
		ctx := context.Background()

		_, err := repo.Hazard().Update(ctx, model.NewHazard("ghost"))
		gt.Error(t, err).Is(repository.ErrNotFound)
	})
}

func TestHazardRepository_Delete(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo interfaces.Repository) {
		ctx := context.Background()

		created, err := repo.Hazard().Create(ctx, model.NewHazard("doomed"))
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Hazard().Delete(ctx, created.ID))

		_, err = repo.Hazard().Get(ctx, created.ID)
		gt.Error(t, err).Is(repository.ErrNotFound)

		gt.Error(t, repo.Hazard().Delete(ctx, created.ID)).Is(repository.ErrNotFound)
	})
}

func TestHazardRepository_ReplaceAll(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo interfaces.Repository) {
		ctx := context.Background()

		_, err := repo.Hazard().Create(ctx, model.NewHazard("old"))
		gt.NoError(t, err).Required()

		imported := []*model.Hazard{model.NewHazard("new 1"), model.NewHazard("new 2")}
		gt.NoError(t, repo.Hazard().ReplaceAll(ctx, imported))

		listed, err := repo.Hazard().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, listed).Length(2)
		gt.Value(t, listed[0].Title).Equal("new 1")
	})
}

func TestHazardRepository_ReturnsCopies(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo interfaces.Repository) {
		ctx := context.Background()

		h := model.NewHazard("shared")
		h.Causes = append(h.Causes, model.Cause{ID: "00000000-0000-0000-0000-00000000000c", Text: "original"})
		created, err := repo.Hazard().Create(ctx, h)
		gt.NoError(t, err).Required()

		created.Causes[0].Text = "mutated"

		retrieved, err := repo.Hazard().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Causes[0].Text).Equal("original")
	})
}
