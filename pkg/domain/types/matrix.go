package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// LikelihoodID identifies a likelihood level within the risk matrix
// configuration (e.g. "A".."E").
type LikelihoodID string

// SeverityID identifies a severity level within the risk matrix
// configuration (e.g. "1".."5").
type SeverityID string

// RiskLevelID identifies a named risk level (e.g. "low", "medium", "high").
type RiskLevelID string

var levelIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+([-_][A-Za-z0-9]+)*$`)

// Validate checks if the LikelihoodID is valid
func (l LikelihoodID) Validate() error {
	if l == "" {
		return goerr.New("likelihood ID cannot be empty")
	}
	if !levelIDPattern.MatchString(string(l)) {
		return goerr.New("likelihood ID must be alphanumeric", goerr.V("id", l))
	}
	return nil
}

// String returns the string representation of LikelihoodID
func (l LikelihoodID) String() string {
	return string(l)
}

// Validate checks if the SeverityID is valid
func (s SeverityID) Validate() error {
	if s == "" {
		return goerr.New("severity ID cannot be empty")
	}
	if !levelIDPattern.MatchString(string(s)) {
		return goerr.New("severity ID must be alphanumeric", goerr.V("id", s))
	}
	return nil
}

// String returns the string representation of SeverityID
func (s SeverityID) String() string {
	return string(s)
}

// Validate checks if the RiskLevelID is valid
func (r RiskLevelID) Validate() error {
	if r == "" {
		return goerr.New("risk level ID cannot be empty")
	}
	if !levelIDPattern.MatchString(string(r)) {
		return goerr.New("risk level ID must be alphanumeric", goerr.V("id", r))
	}
	return nil
}

// String returns the string representation of RiskLevelID
func (r RiskLevelID) String() string {
	return string(r)
}
