package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/interfaces"
	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/domain/types"
)

// DocumentUseCase imports and exports the whole workspace: the hazard list
// plus its matrix configuration.
type DocumentUseCase struct {
	repo   interfaces.Repository
	layout *LayoutUseCase
}

func NewDocumentUseCase(repo interfaces.Repository, layout *LayoutUseCase) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, layout: layout}
}

// Import replaces the stored workspace with the parsed document. A document
// that is neither the object form nor the legacy bare array is rejected
// before anything is written, so a failed import never corrupts state.
func (uc *DocumentUseCase) Import(ctx context.Context, data []byte) (*model.Document, error) {
	doc, err := model.DecodeDocument(data)
	if err != nil {
		return nil, err
	}

	// Imported records may predate identifiers; fill in any missing ones.
	for _, h := range doc.Hazards {
		if h.ID == "" {
			h.ID = types.NewHazardID()
		}
	}

	if err := uc.repo.Hazard().ReplaceAll(ctx, doc.Hazards); err != nil {
		return nil, goerr.Wrap(err, "failed to replace hazard list")
	}
	if err := uc.repo.Matrix().Put(ctx, doc.Matrix); err != nil {
		return nil, goerr.Wrap(err, "failed to store imported risk matrix")
	}
	uc.layout.Invalidate(ctx)
	return doc, nil
}

// Export serializes the stored workspace in the current document form.
func (uc *DocumentUseCase) Export(ctx context.Context) ([]byte, error) {
	doc, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return model.EncodeDocument(doc)
}

func (uc *DocumentUseCase) snapshot(ctx context.Context) (*model.Document, error) {
	hazards, err := uc.repo.Hazard().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list hazards for export")
	}
	matrix, err := uc.repo.Matrix().Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load risk matrix for export")
	}
	return &model.Document{Hazards: hazards, Matrix: matrix}, nil
}
