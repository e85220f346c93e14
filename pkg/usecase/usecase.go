package usecase

import (
	"time"

	"github.com/hazop-lab/hazgrid/pkg/domain/interfaces"
)

// UseCases bundles the application operations over one repository. The
// repository is the single owner of hazard state; every use case mutates it
// through the same handle so layout invalidation stays consistent.
type UseCases struct {
	repo interfaces.Repository

	layoutDelay time.Duration

	Hazard   *HazardUseCase
	Matrix   *MatrixUseCase
	Document *DocumentUseCase
	Layout   *LayoutUseCase
	Export   *ExportUseCase
}

type Option func(*UseCases)

// WithLayoutDelay overrides how long the layout use case waits after the
// last mutation before recomputing. Tests shorten it.
func WithLayoutDelay(d time.Duration) Option {
	return func(uc *UseCases) {
		uc.layoutDelay = d
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:        repo,
		layoutDelay: defaultLayoutDelay,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Layout = NewLayoutUseCase(repo, uc.layoutDelay)
	uc.Hazard = NewHazardUseCase(repo, uc.Layout)
	uc.Matrix = NewMatrixUseCase(repo, uc.Layout)
	uc.Document = NewDocumentUseCase(repo, uc.Layout)
	uc.Export = NewExportUseCase(repo)

	return uc
}

// Close releases background resources.
func (uc *UseCases) Close() {
	uc.Layout.Close()
}
