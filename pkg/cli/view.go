package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/hazop-lab/hazgrid/pkg/cli/config"
	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/render/term"
	"github.com/hazop-lab/hazgrid/pkg/usecase"
	"github.com/hazop-lab/hazgrid/pkg/utils/logging"
)

func cmdView() *cli.Command {
	var input string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Hazard document (JSON) to view instead of the stored data",
			Sources:     cli.EnvVars("HAZGRID_INPUT"),
			Destination: &input,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "view",
		Usage: "Render hazard blocks to the terminal",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			var hazards []*model.Hazard
			var matrix *model.RiskMatrix

			if input != "" {
				// #nosec G304 - path is expected to be provided by CLI argument
				data, err := os.ReadFile(input)
				if err != nil {
					return goerr.Wrap(err, "failed to read input document", goerr.V("path", input))
				}
				doc, err := model.DecodeDocument(data)
				if err != nil {
					return goerr.Wrap(err, "failed to parse document", goerr.V("path", input))
				}
				hazards = doc.Hazards
				matrix = doc.Matrix
			} else {
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

				hazards, err = uc.Hazard.List(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to list hazards")
				}
				matrix, err = uc.Matrix.Get(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to load risk matrix")
				}
			}

			if len(hazards) == 0 {
				fmt.Println("No hazards recorded.")
				return nil
			}

			fmt.Println(term.NewRenderer(matrix).RenderAll(hazards))
			return nil
		},
	}
}
