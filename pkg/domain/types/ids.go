package types

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// HazardID represents a unique identifier for a hazard record
type HazardID string

// CauseID represents a unique identifier for a cause
type CauseID string

// ConsequenceID represents a unique identifier for a consequence
type ConsequenceID string

// MeasureID represents a unique identifier for a prevention or mitigation measure
type MeasureID string

// RecommendationID represents a unique identifier for a recommendation
type RecommendationID string

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// NewHazardID generates a new UUID v4 HazardID
func NewHazardID() HazardID {
	return HazardID(uuid.New().String())
}

// NewCauseID generates a new UUID v4 CauseID
func NewCauseID() CauseID {
	return CauseID(uuid.New().String())
}

// NewConsequenceID generates a new UUID v4 ConsequenceID
func NewConsequenceID() ConsequenceID {
	return ConsequenceID(uuid.New().String())
}

// NewMeasureID generates a new UUID v4 MeasureID
func NewMeasureID() MeasureID {
	return MeasureID(uuid.New().String())
}

// NewRecommendationID generates a new UUID v4 RecommendationID
func NewRecommendationID() RecommendationID {
	return RecommendationID(uuid.New().String())
}

// Validate checks if the HazardID is valid
func (h HazardID) Validate() error {
	if h == "" {
		return goerr.New("hazard ID cannot be empty")
	}
	if !uuidPattern.MatchString(string(h)) {
		return goerr.New("hazard ID must be a UUID", goerr.V("id", h))
	}
	return nil
}

// String returns the string representation of HazardID
func (h HazardID) String() string {
	return string(h)
}

// String returns the string representation of CauseID
func (c CauseID) String() string {
	return string(c)
}

// String returns the string representation of ConsequenceID
func (c ConsequenceID) String() string {
	return string(c)
}

// String returns the string representation of MeasureID
func (m MeasureID) String() string {
	return string(m)
}

// String returns the string representation of RecommendationID
func (r RecommendationID) String() string {
	return string(r)
}
