package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/interfaces"
	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/domain/types"
)

// HazardUseCase implements hazard CRUD and duplication. Every mutation
// invalidates the layout cache.
type HazardUseCase struct {
	repo   interfaces.Repository
	layout *LayoutUseCase
}

func NewHazardUseCase(repo interfaces.Repository, layout *LayoutUseCase) *HazardUseCase {
	return &HazardUseCase{repo: repo, layout: layout}
}

func (uc *HazardUseCase) Create(ctx context.Context, hazard *model.Hazard) (*model.Hazard, error) {
	if hazard.Title == "" {
		return nil, goerr.Wrap(ErrTitleRequired, "cannot create hazard")
	}

	created, err := uc.repo.Hazard().Create(ctx, hazard)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create hazard")
	}
	uc.layout.Invalidate(ctx)
	return created, nil
}

func (uc *HazardUseCase) Get(ctx context.Context, id types.HazardID) (*model.Hazard, error) {
	hazard, err := uc.repo.Hazard().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get hazard", goerr.V("hazardID", id))
	}
	return hazard, nil
}

func (uc *HazardUseCase) List(ctx context.Context) ([]*model.Hazard, error) {
	hazards, err := uc.repo.Hazard().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list hazards")
	}
	return hazards, nil
}

func (uc *HazardUseCase) Update(ctx context.Context, hazard *model.Hazard) (*model.Hazard, error) {
	if hazard.Title == "" {
		return nil, goerr.Wrap(ErrTitleRequired, "cannot update hazard", goerr.V("hazardID", hazard.ID))
	}

	updated, err := uc.repo.Hazard().Update(ctx, hazard)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update hazard", goerr.V("hazardID", hazard.ID))
	}
	uc.layout.Invalidate(ctx)
	return updated, nil
}

func (uc *HazardUseCase) Delete(ctx context.Context, id types.HazardID) error {
	if err := uc.repo.Hazard().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete hazard", goerr.V("hazardID", id))
	}
	uc.layout.Invalidate(ctx)
	return nil
}

// Duplicate deep-copies an existing hazard under fresh identifiers and
// appends the copy to the list.
func (uc *HazardUseCase) Duplicate(ctx context.Context, id types.HazardID) (*model.Hazard, error) {
	original, err := uc.repo.Hazard().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load hazard for duplication", goerr.V("hazardID", id))
	}

	copied := original.Clone()
	copied.Title = original.Title + " (copy)"

	created, err := uc.repo.Hazard().Create(ctx, copied)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store duplicated hazard", goerr.V("hazardID", id))
	}
	uc.layout.Invalidate(ctx)
	return created, nil
}

// Seed ensures the store offers something to edit: when the list is empty it
// creates the default record with one blank cause and one blank consequence.
func (uc *HazardUseCase) Seed(ctx context.Context) (*model.Hazard, error) {
	hazards, err := uc.repo.Hazard().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check store before seeding")
	}
	if len(hazards) > 0 {
		return nil, nil
	}

	created, err := uc.repo.Hazard().Create(ctx, model.SeedHazard())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to seed hazard store")
	}
	uc.layout.Invalidate(ctx)
	return created, nil
}
