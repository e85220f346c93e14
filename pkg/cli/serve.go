package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/hazop-lab/hazgrid/pkg/cli/config"
	httpctrl "github.com/hazop-lab/hazgrid/pkg/controller/http"
	"github.com/hazop-lab/hazgrid/pkg/usecase"
	"github.com/hazop-lab/hazgrid/pkg/utils/async"
	"github.com/hazop-lab/hazgrid/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var matrixConfigPath string
	var seed bool
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("HAZGRID_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "matrix-config",
			Usage:       "TOML file with the risk matrix scales (seeds an empty store)",
			Sources:     cli.EnvVars("HAZGRID_MATRIX_CONFIG"),
			Destination: &matrixConfigPath,
		},
		&cli.BoolFlag{
			Name:        "seed",
			Usage:       "Create a blank hazard when the store is empty",
			Value:       true,
			Sources:     cli.EnvVars("HAZGRID_SEED"),
			Destination: &seed,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo)
			defer uc.Close()

			if matrixConfigPath != "" {
				matrixCfg, err := config.LoadMatrixConfiguration(matrixConfigPath)
				if err != nil {
					return goerr.Wrap(err, "failed to load matrix configuration")
				}
				if _, err := uc.Matrix.Update(ctx, matrixCfg.ToRiskMatrix()); err != nil {
					return goerr.Wrap(err, "failed to seed risk matrix")
				}
				logging.Default().Info("Risk matrix seeded from config", "path", matrixConfigPath)
			}

			if seed {
				seeded, err := uc.Hazard.Seed(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to seed hazard store")
				}
				if seeded != nil {
					logging.Default().Info("Seeded empty store with a blank hazard",
						"hazard_id", seeded.ID)
				}
			}

			// Warm the layout cache so the first request is served from it.
			async.Dispatch(ctx, func(ctx context.Context) error {
				_, err := uc.Layout.Layouts(ctx)
				return err
			})

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
