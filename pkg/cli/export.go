package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/hazop-lab/hazgrid/pkg/cli/config"
	"github.com/hazop-lab/hazgrid/pkg/usecase"
	"github.com/hazop-lab/hazgrid/pkg/utils/logging"
	"github.com/hazop-lab/hazgrid/pkg/utils/safe"
)

func cmdExport() *cli.Command {
	var input string
	var output string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Hazard document (JSON) to export instead of the stored data",
			Sources:     cli.EnvVars("HAZGRID_INPUT"),
			Destination: &input,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output xlsx path",
			Value:       "hazards.xlsx",
			Sources:     cli.EnvVars("HAZGRID_OUTPUT"),
			Destination: &output,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Export hazards to an xlsx workbook",
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

			if input != "" {
				// #nosec G304 - path is expected to be provided by CLI argument
				data, err := os.ReadFile(input)
				if err != nil {
					return goerr.Wrap(err, "failed to read input document", goerr.V("path", input))
				}
				if _, err := uc.Document.Import(ctx, data); err != nil {
					return goerr.Wrap(err, "failed to import document", goerr.V("path", input))
				}
			}

			buf, err := uc.Export.Workbook(ctx)
			if err != nil {
				return goerr.Wrap(err, "export failed")
			}

			// #nosec G304 - path is expected to be provided by CLI argument
			f, err := os.Create(output)
			if err != nil {
				return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
			}
			defer safe.Close(ctx, f)

			safe.Copy(ctx, f, buf)
			logging.Default().Info("Workbook exported", "path", output)
			return nil
		},
	}
}
