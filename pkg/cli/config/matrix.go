package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/domain/types"
)

// MatrixConfig is the TOML form of the risk matrix used to seed a fresh
// store. Cells are always regenerated from the default rule; the file only
// carries the scales and levels.
type MatrixConfig struct {
	Likelihood []LikelihoodLevel `toml:"likelihood"`
	Severity   []SeverityLevel   `toml:"severity"`
	Levels     []RiskLevel       `toml:"level"`
}

// LikelihoodLevel represents a likelihood level configuration
type LikelihoodLevel struct {
	ID          string `toml:"id"`
	Label       string `toml:"label"`
	Description string `toml:"description"`
}

// Validate checks if the LikelihoodLevel is valid
func (l *LikelihoodLevel) Validate() error {
	id := types.LikelihoodID(l.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid likelihood ID")
	}
	if l.Label == "" {
		return goerr.Wrap(ErrMissingLabel, "likelihood level", goerr.V("id", l.ID))
	}
	return nil
}

// SeverityLevel represents a severity level configuration. Categories maps
// a severity category to its guidance text for this level.
type SeverityLevel struct {
	ID          string            `toml:"id"`
	Label       string            `toml:"label"`
	Description string            `toml:"description"`
	Categories  map[string]string `toml:"categories"`
}

// Validate checks if the SeverityLevel is valid
func (s *SeverityLevel) Validate() error {
	id := types.SeverityID(s.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid severity ID")
	}
	if s.Label == "" {
		return goerr.Wrap(ErrMissingLabel, "severity level", goerr.V("id", s.ID))
	}
	for cat := range s.Categories {
		if err := types.SeverityCategory(cat).Validate(); err != nil {
			return goerr.Wrap(err, "invalid severity category", goerr.V("id", s.ID))
		}
	}
	return nil
}

// RiskLevel represents a risk level configuration
type RiskLevel struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Color string `toml:"color"`
}

// Validate checks if the RiskLevel is valid
func (r *RiskLevel) Validate() error {
	id := types.RiskLevelID(r.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid risk level ID")
	}
	if r.Label == "" {
		return goerr.Wrap(ErrMissingLabel, "risk level", goerr.V("id", r.ID))
	}
	return nil
}

// Validate checks if the MatrixConfig is valid
func (m *MatrixConfig) Validate() error {
	if len(m.Likelihood) == 0 || len(m.Severity) == 0 {
		return goerr.Wrap(ErrInvalidConfig, "at least one likelihood and one severity level required")
	}
	if len(m.Levels) == 0 {
		return goerr.Wrap(ErrInvalidConfig, "at least one risk level required")
	}

	likelihoodIDs := make(map[string]bool)
	for _, l := range m.Likelihood {
		if err := l.Validate(); err != nil {
			return goerr.Wrap(err, "invalid likelihood level")
		}
		if likelihoodIDs[l.ID] {
			return goerr.Wrap(ErrDuplicateLevelID, "likelihood", goerr.V("id", l.ID))
		}
		likelihoodIDs[l.ID] = true
	}

	severityIDs := make(map[string]bool)
	for _, s := range m.Severity {
		if err := s.Validate(); err != nil {
			return goerr.Wrap(err, "invalid severity level")
		}
		if severityIDs[s.ID] {
			return goerr.Wrap(ErrDuplicateLevelID, "severity", goerr.V("id", s.ID))
		}
		severityIDs[s.ID] = true
	}

	levelIDs := make(map[string]bool)
	for _, r := range m.Levels {
		if err := r.Validate(); err != nil {
			return goerr.Wrap(err, "invalid risk level")
		}
		if levelIDs[r.ID] {
			return goerr.Wrap(ErrDuplicateLevelID, "risk level", goerr.V("id", r.ID))
		}
		levelIDs[r.ID] = true
	}

	return nil
}

// LoadMatrixConfiguration loads a risk matrix from a TOML file
func LoadMatrixConfiguration(path string) (*MatrixConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var config MatrixConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V("path", path))
	}

	return &config, nil
}

// ToRiskMatrix converts the configuration to a domain matrix with the cell
// mapping generated by the default rule.
func (m *MatrixConfig) ToRiskMatrix() *model.RiskMatrix {
	matrix := &model.RiskMatrix{
		Likelihood:           make([]model.LikelihoodLevel, len(m.Likelihood)),
		Severity:             make([]model.SeverityLevel, len(m.Severity)),
		Levels:               make([]model.RiskLevel, len(m.Levels)),
		SeverityDescriptions: map[types.SeverityID]map[types.SeverityCategory]string{},
	}
	for i, l := range m.Likelihood {
		matrix.Likelihood[i] = model.LikelihoodLevel{
			ID:          types.LikelihoodID(l.ID),
			Label:       l.Label,
			Description: l.Description,
		}
	}
	for i, s := range m.Severity {
		matrix.Severity[i] = model.SeverityLevel{
			ID:          types.SeverityID(s.ID),
			Label:       s.Label,
			Description: s.Description,
		}
		if len(s.Categories) > 0 {
			byCat := make(map[types.SeverityCategory]string, len(s.Categories))
			for cat, text := range s.Categories {
				byCat[types.SeverityCategory(cat)] = text
			}
			matrix.SeverityDescriptions[types.SeverityID(s.ID)] = byCat
		}
	}
	for i, r := range m.Levels {
		matrix.Levels[i] = model.RiskLevel{
			ID:    types.RiskLevelID(r.ID),
			Label: r.Label,
			Color: r.Color,
		}
	}
	matrix.Rebuild()
	return matrix
}
