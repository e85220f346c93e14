package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/hazop-lab/hazgrid/pkg/domain/interfaces"
	"github.com/hazop-lab/hazgrid/pkg/repository/badger"
	"github.com/hazop-lab/hazgrid/pkg/repository/memory"
	"github.com/hazop-lab/hazgrid/pkg/utils/logging"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend string
	dataDir string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (badger or memory)",
			Value:       "badger",
			Sources:     cli.EnvVars("HAZGRID_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory for the badger database",
			Value:       "./data",
			Sources:     cli.EnvVars("HAZGRID_DATA_DIR"),
			Destination: &r.dataDir,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// Configure initializes and returns a repository based on the configured
// backend. The caller is responsible for calling Close() on the returned
// repository.
func (r *Repository) Configure() (interfaces.Repository, error) {
	switch r.backend {
	case "badger":
		repo, err := badger.New(r.dataDir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize badger repository",
				goerr.V("data_dir", r.dataDir))
		}
		logging.Default().Info("Using badger repository", "data_dir", r.dataDir)
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
