package types

import "github.com/m-mizutani/goerr/v2"

// SeverityCategory represents the aspect a consequence's severity is rated
// against (who or what is harmed).
type SeverityCategory string

const (
	CategoryPeople      SeverityCategory = "people"
	CategoryEnvironment SeverityCategory = "environment"
	CategoryAssets      SeverityCategory = "assets"
	CategoryReputation  SeverityCategory = "reputation"
)

// SeverityCategories returns all severity categories in display order
func SeverityCategories() []SeverityCategory {
	return []SeverityCategory{
		CategoryPeople,
		CategoryEnvironment,
		CategoryAssets,
		CategoryReputation,
	}
}

// Validate checks if the SeverityCategory is one of the fixed set.
// An empty category is allowed: a consequence may be unrated.
func (c SeverityCategory) Validate() error {
	switch c {
	case "", CategoryPeople, CategoryEnvironment, CategoryAssets, CategoryReputation:
		return nil
	}
	return goerr.New("unknown severity category", goerr.V("category", c))
}

// String returns the string representation of SeverityCategory
func (c SeverityCategory) String() string {
	return string(c)
}

// Label returns a human readable label for the category
func (c SeverityCategory) Label() string {
	switch c {
	case CategoryPeople:
		return "People"
	case CategoryEnvironment:
		return "Environment"
	case CategoryAssets:
		return "Assets"
	case CategoryReputation:
		return "Reputation"
	default:
		return string(c)
	}
}
