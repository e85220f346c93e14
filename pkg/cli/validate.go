package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/hazop-lab/hazgrid/pkg/cli/config"
	"github.com/hazop-lab/hazgrid/pkg/domain/model"
)

func cmdValidate() *cli.Command {
	var matrixConfigPath string
	var documentPath string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "matrix-config",
			Usage:       "TOML risk matrix configuration to validate",
			Sources:     cli.EnvVars("HAZGRID_MATRIX_CONFIG"),
			Destination: &matrixConfigPath,
		},
		&cli.StringFlag{
			Name:        "document",
			Usage:       "Hazard document (JSON) to validate",
			Sources:     cli.EnvVars("HAZGRID_DOCUMENT"),
			Destination: &documentPath,
		},
	}

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate configuration and document files",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if matrixConfigPath == "" && documentPath == "" {
				return goerr.New("nothing to validate: pass --matrix-config and/or --document")
			}

			ok := true
			if matrixConfigPath != "" {
				if err := validateMatrixConfig(matrixConfigPath); err != nil {
					printVerdict(matrixConfigPath, err)
					ok = false
				} else {
					printVerdict(matrixConfigPath, nil)
				}
			}
			if documentPath != "" {
				if err := validateDocument(documentPath); err != nil {
					printVerdict(documentPath, err)
					ok = false
				} else {
					printVerdict(documentPath, nil)
				}
			}

			if !ok {
				return goerr.New("validation failed")
			}
			return nil
		},
	}
}

func validateMatrixConfig(path string) error {
	cfg, err := config.LoadMatrixConfiguration(path)
	if err != nil {
		return err
	}

	matrix := cfg.ToRiskMatrix()
	expected := len(matrix.Likelihood) * len(matrix.Severity)
	if len(matrix.Cells) != expected {
		return goerr.New("generated cell mapping is incomplete",
			goerr.V("expected", expected), goerr.V("actual", len(matrix.Cells)))
	}
	return nil
}

func validateDocument(path string) error {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read document", goerr.V("path", path))
	}
	doc, err := model.DecodeDocument(data)
	if err != nil {
		return err
	}

	for _, h := range doc.Hazards {
		if h.Title == "" {
			return goerr.New("hazard without a title", goerr.V("hazardID", h.ID))
		}
	}
	return nil
}

func printVerdict(path string, err error) {
	if err != nil {
		fmt.Printf("%s %s: %v\n", color.RedString("NG"), path, err)
		return
	}
	fmt.Printf("%s %s\n", color.GreenString("OK"), path)
}
