package model

import "github.com/hazop-lab/hazgrid/pkg/domain/types"

// Risk is the rating attached to a consequence. Score is a derived, cached
// label: it must always equal the matrix resolution for
// (SeverityID, LikelihoodID) and is recomputed on every read or render,
// never trusted as authoritative input.
type Risk struct {
	Category     types.SeverityCategory `json:"severityCategory"`
	SeverityID   types.SeverityID       `json:"severityLevel"`
	LikelihoodID types.LikelihoodID     `json:"likelihoodLevel"`
	Score        string                 `json:"riskScore"`
}

// Rated reports whether both severity and likelihood are set.
func (r Risk) Rated() bool {
	return r.SeverityID != "" && r.LikelihoodID != ""
}

// Rate refreshes the cached Score from the matrix. An unset or unmapped
// rating degrades to an empty score, never to an error.
func (r *Risk) Rate(m *RiskMatrix) {
	level, ok := m.Resolve(r.SeverityID, r.LikelihoodID)
	if !ok {
		r.Score = ""
		return
	}
	r.Score = level.Label
}
