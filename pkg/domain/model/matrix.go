package model

import (
	"fmt"

	"github.com/hazop-lab/hazgrid/pkg/domain/types"
)

// LikelihoodLevel is one ordered likelihood level of the risk matrix.
type LikelihoodLevel struct {
	ID          types.LikelihoodID `json:"id"`
	Label       string             `json:"label"`
	Description string             `json:"description"`
}

// SeverityLevel is one ordered severity level of the risk matrix.
type SeverityLevel struct {
	ID          types.SeverityID `json:"id"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
}

// RiskLevel is a named, colored outcome of the matrix (e.g. low/medium/high).
type RiskLevel struct {
	ID    types.RiskLevelID `json:"id"`
	Label string            `json:"label"`
	Color string            `json:"color"`
}

// Thresholds of the default population rule. Observed behavior of the
// original tool; possibly arbitrary cutoffs rather than validated domain
// constants.
const (
	defaultHighRatio   = 0.7
	defaultMediumRatio = 0.4
)

// RiskMatrix holds the ordered likelihood and severity scales, the named
// risk levels, per-severity category descriptions, and the computed mapping
// from (likelihood, severity) cells to risk levels.
type RiskMatrix struct {
	Likelihood []LikelihoodLevel `json:"likelihood"`
	Severity   []SeverityLevel   `json:"severity"`
	Levels     []RiskLevel       `json:"riskLevels"`

	// SeverityDescriptions is the guidance text keyed by severity level and
	// category, shown in the matrix reference table.
	SeverityDescriptions map[types.SeverityID]map[types.SeverityCategory]string `json:"severityDescriptions"`

	// Cells maps "<likelihoodId>-<severityId>" to a risk level. Regenerated
	// from the default rule whenever the likelihood or severity lists
	// change; custom imported cells override until the next regeneration.
	Cells map[string]types.RiskLevelID `json:"matrix"`
}

// CellKey builds the mapping key for a (likelihood, severity) pair.
func CellKey(lik types.LikelihoodID, sev types.SeverityID) string {
	return fmt.Sprintf("%s-%s", lik, sev)
}

// DefaultRiskMatrix returns the built-in 5x5 matrix with three risk levels.
func DefaultRiskMatrix() *RiskMatrix {
	m := &RiskMatrix{
		Likelihood: []LikelihoodLevel{
			{ID: "A", Label: "A", Description: "Heard of in the industry"},
			{ID: "B", Label: "B", Description: "Has occurred in the organization"},
			{ID: "C", Label: "C", Description: "Occurs yearly in the organization"},
			{ID: "D", Label: "D", Description: "Occurs several times per year"},
			{ID: "E", Label: "E", Description: "Occurs monthly or more often"},
		},
		Severity: []SeverityLevel{
			{ID: "1", Label: "1", Description: "Slight effect"},
			{ID: "2", Label: "2", Description: "Minor effect"},
			{ID: "3", Label: "3", Description: "Moderate effect"},
			{ID: "4", Label: "4", Description: "Major effect"},
			{ID: "5", Label: "5", Description: "Massive effect"},
		},
		Levels: []RiskLevel{
			{ID: "low", Label: "Low", Color: "#4CAF50"},
			{ID: "medium", Label: "Medium", Color: "#FFC107"},
			{ID: "high", Label: "High", Color: "#F44336"},
		},
		SeverityDescriptions: map[types.SeverityID]map[types.SeverityCategory]string{},
	}
	m.Rebuild()
	return m
}

// Normalize fills nil collections and ensures the cell mapping exists.
func (m *RiskMatrix) Normalize() {
	if m.Likelihood == nil {
		m.Likelihood = []LikelihoodLevel{}
	}
	if m.Severity == nil {
		m.Severity = []SeverityLevel{}
	}
	if m.Levels == nil {
		m.Levels = []RiskLevel{}
	}
	if m.SeverityDescriptions == nil {
		m.SeverityDescriptions = map[types.SeverityID]map[types.SeverityCategory]string{}
	}
	if m.Cells == nil {
		m.Rebuild()
	}
}

// Rebuild regenerates the full cell mapping from the default rule: for
// likelihood index li and severity index si (0-based, list order),
// ratio = (li+si) / ((likelihoodCount-1)+(severityCount-1)); the cell gets
// the risk level at ordinal 2 when ratio >= 0.7, ordinal 1 when >= 0.4,
// otherwise ordinal 0. Only list order matters, never labels.
func (m *RiskMatrix) Rebuild() {
	m.Cells = make(map[string]types.RiskLevelID, len(m.Likelihood)*len(m.Severity))
	if len(m.Levels) == 0 {
		return
	}
	denom := float64((len(m.Likelihood) - 1) + (len(m.Severity) - 1))
	for li, lik := range m.Likelihood {
		for si, sev := range m.Severity {
			ratio := 0.0
			if denom > 0 {
				ratio = float64(li+si) / denom
			}
			m.Cells[CellKey(lik.ID, sev.ID)] = m.Levels[m.levelOrdinal(ratio)].ID
		}
	}
}

func (m *RiskMatrix) levelOrdinal(ratio float64) int {
	ordinal := 0
	switch {
	case ratio >= defaultHighRatio:
		ordinal = 2
	case ratio >= defaultMediumRatio:
		ordinal = 1
	}
	if ordinal >= len(m.Levels) {
		ordinal = len(m.Levels) - 1
	}
	return ordinal
}

// ApplyCells overrides individual cells with an imported custom mapping.
// Cells whose risk level ID does not resolve are dropped silently.
func (m *RiskMatrix) ApplyCells(cells map[string]types.RiskLevelID) {
	if m.Cells == nil {
		m.Rebuild()
	}
	for key, id := range cells {
		if _, ok := m.Level(id); !ok {
			continue
		}
		m.Cells[key] = id
	}
}

// Resolve returns the risk level for a (severity, likelihood) pair. It
// reports false when either input is unset or no matching cell or level
// exists.
func (m *RiskMatrix) Resolve(sev types.SeverityID, lik types.LikelihoodID) (RiskLevel, bool) {
	if sev == "" || lik == "" {
		return RiskLevel{}, false
	}
	id, ok := m.Cells[CellKey(lik, sev)]
	if !ok {
		return RiskLevel{}, false
	}
	return m.Level(id)
}

// Level looks up a risk level by ID.
func (m *RiskMatrix) Level(id types.RiskLevelID) (RiskLevel, bool) {
	for _, level := range m.Levels {
		if level.ID == id {
			return level, true
		}
	}
	return RiskLevel{}, false
}

// LevelByLabel looks up a risk level by its display label. Renderers use it
// to recover the level (and its color) from a rendered score.
func (m *RiskMatrix) LevelByLabel(label string) (RiskLevel, bool) {
	if label == "" {
		return RiskLevel{}, false
	}
	for _, level := range m.Levels {
		if level.Label == label {
			return level, true
		}
	}
	return RiskLevel{}, false
}

// SeverityDescription returns the guidance text for a severity level and
// category, or an empty string.
func (m *RiskMatrix) SeverityDescription(sev types.SeverityID, cat types.SeverityCategory) string {
	byCat, ok := m.SeverityDescriptions[sev]
	if !ok {
		return ""
	}
	return byCat[cat]
}

// Clone deep-copies the matrix.
func (m *RiskMatrix) Clone() *RiskMatrix {
	copied := &RiskMatrix{
		Likelihood:           append([]LikelihoodLevel{}, m.Likelihood...),
		Severity:             append([]SeverityLevel{}, m.Severity...),
		Levels:               append([]RiskLevel{}, m.Levels...),
		SeverityDescriptions: make(map[types.SeverityID]map[types.SeverityCategory]string, len(m.SeverityDescriptions)),
		Cells:                make(map[string]types.RiskLevelID, len(m.Cells)),
	}
	for sev, byCat := range m.SeverityDescriptions {
		inner := make(map[types.SeverityCategory]string, len(byCat))
		for cat, text := range byCat {
			inner[cat] = text
		}
		copied.SeverityDescriptions[sev] = inner
	}
	for key, id := range m.Cells {
		copied.Cells[key] = id
	}
	return copied
}
