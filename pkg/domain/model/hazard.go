package model

import (
	"time"

	"github.com/hazop-lab/hazgrid/pkg/domain/types"
)

// Hazard is one hazard-analysis record: a titled hazard owning ragged lists
// of causes, consequences and recommendations. Causes and consequences
// participate in the alignment grid; recommendations are rendered as an
// independent stacked list.
type Hazard struct {
	ID              types.HazardID   `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Causes          []Cause          `json:"causes"`
	Consequences    []Consequence    `json:"consequences"`
	Recommendations []Recommendation `json:"recommendations"`
	CreatedAt       time.Time        `json:"createdAt,omitzero"`
	UpdatedAt       time.Time        `json:"updatedAt,omitzero"`
}

// Cause is one cause of a hazard with its prevention measures.
type Cause struct {
	ID          types.CauseID `json:"id"`
	Text        string        `json:"text"`
	Preventions []Measure     `json:"preventionMeasures"`
}

// Consequence is one consequence of a hazard with its mitigation measures
// and risk rating.
type Consequence struct {
	ID          types.ConsequenceID `json:"id"`
	Text        string              `json:"text"`
	Mitigations []Measure           `json:"mitigationMeasures"`
	Risk        Risk                `json:"risk"`
}

// Measure is a single prevention or mitigation measure.
type Measure struct {
	ID   types.MeasureID `json:"id"`
	Text string          `json:"text"`
}

// Recommendation is a follow-up action with a responsible party.
type Recommendation struct {
	ID          types.RecommendationID `json:"id"`
	Action      string                 `json:"action"`
	Responsible string                 `json:"responsible"`
}

// NewHazard creates an empty hazard with a fresh ID.
func NewHazard(title string) *Hazard {
	return &Hazard{
		ID:              types.NewHazardID(),
		Title:           title,
		Causes:          []Cause{},
		Consequences:    []Consequence{},
		Recommendations: []Recommendation{},
	}
}

// SeedHazard creates the default record offered to the user when the store
// is empty: one blank cause and one blank, unrated consequence.
func SeedHazard() *Hazard {
	h := NewHazard("New hazard")
	h.Causes = append(h.Causes, Cause{ID: types.NewCauseID(), Preventions: []Measure{}})
	h.Consequences = append(h.Consequences, Consequence{ID: types.NewConsequenceID(), Mitigations: []Measure{}})
	return h
}

// Normalize fills nil child slices with empty ones. Externally loaded data
// with missing arrays is normalized, not rejected.
func (h *Hazard) Normalize() {
	if h.Causes == nil {
		h.Causes = []Cause{}
	}
	if h.Consequences == nil {
		h.Consequences = []Consequence{}
	}
	if h.Recommendations == nil {
		h.Recommendations = []Recommendation{}
	}
	for i := range h.Causes {
		if h.Causes[i].Preventions == nil {
			h.Causes[i].Preventions = []Measure{}
		}
	}
	for i := range h.Consequences {
		if h.Consequences[i].Mitigations == nil {
			h.Consequences[i].Mitigations = []Measure{}
		}
	}
}

// Copy deep-copies the hazard preserving all identifiers. Repositories use
// it so stored state can never be mutated through returned pointers.
func (h *Hazard) Copy() *Hazard {
	copied := &Hazard{
		ID:              h.ID,
		Title:           h.Title,
		Description:     h.Description,
		Causes:          make([]Cause, len(h.Causes)),
		Consequences:    make([]Consequence, len(h.Consequences)),
		Recommendations: append([]Recommendation{}, h.Recommendations...),
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
	for i, c := range h.Causes {
		copied.Causes[i] = Cause{
			ID:          c.ID,
			Text:        c.Text,
			Preventions: append([]Measure{}, c.Preventions...),
		}
	}
	for i, c := range h.Consequences {
		copied.Consequences[i] = Consequence{
			ID:          c.ID,
			Text:        c.Text,
			Mitigations: append([]Measure{}, c.Mitigations...),
			Risk:        c.Risk,
		}
	}
	return copied
}

// Clone deep-copies the hazard, assigning fresh identifiers to the copy and
// every nested entity. Used by duplication and copy/paste.
func (h *Hazard) Clone() *Hazard {
	copied := &Hazard{
		ID:              types.NewHazardID(),
		Title:           h.Title,
		Description:     h.Description,
		Causes:          make([]Cause, len(h.Causes)),
		Consequences:    make([]Consequence, len(h.Consequences)),
		Recommendations: make([]Recommendation, len(h.Recommendations)),
	}
	for i, c := range h.Causes {
		copied.Causes[i] = c.Clone()
	}
	for i, c := range h.Consequences {
		copied.Consequences[i] = c.Clone()
	}
	for i, r := range h.Recommendations {
		copied.Recommendations[i] = Recommendation{
			ID:          types.NewRecommendationID(),
			Action:      r.Action,
			Responsible: r.Responsible,
		}
	}
	return copied
}

// Clone deep-copies the cause with fresh IDs.
func (c Cause) Clone() Cause {
	copied := Cause{
		ID:          types.NewCauseID(),
		Text:        c.Text,
		Preventions: make([]Measure, len(c.Preventions)),
	}
	for i, m := range c.Preventions {
		copied.Preventions[i] = Measure{ID: types.NewMeasureID(), Text: m.Text}
	}
	return copied
}

// Clone deep-copies the consequence with fresh IDs. The risk rating is
// value-copied; it carries no identity of its own.
func (c Consequence) Clone() Consequence {
	copied := Consequence{
		ID:          types.NewConsequenceID(),
		Text:        c.Text,
		Mitigations: make([]Measure, len(c.Mitigations)),
		Risk:        c.Risk,
	}
	for i, m := range c.Mitigations {
		copied.Mitigations[i] = Measure{ID: types.NewMeasureID(), Text: m.Text}
	}
	return copied
}
