// Package types provides type definitions for structured data used throughout the recruitment pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ExperienceLevel is the closed set of seniority tags a posting can carry.
type ExperienceLevel string

const (
	EntryLevel ExperienceLevel = "Entry-level"
	Junior     ExperienceLevel = "Junior"
	MidLevel   ExperienceLevel = "Mid-level"
	Senior     ExperienceLevel = "Senior"
)

// ExperienceLevels returns all valid experience levels.
func ExperienceLevels() []ExperienceLevel {
	return []ExperienceLevel{EntryLevel, Junior, MidLevel, Senior}
}

// Valid reports whether l is one of the enumerated experience levels.
func (l ExperienceLevel) Valid() bool {
	switch l {
	case EntryLevel, Junior, MidLevel, Senior:
		return true
	}
	return false
}

// SalaryRange holds the structured salary information for a posting.
// Kept as a free-form mapping so arbitrary nested content (min/max, currency,
// equity notes) survives encoding and decoding losslessly.
type SalaryRange map[string]any

// JobPosting represents a single open position.
// Postings are created by ingestion and read-only to the matching engine;
// requirements and benefits are ordered lists, stored encoded at rest.
type JobPosting struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	EmploymentType  string          `json:"type"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	SalaryRange     SalaryRange     `json:"salary_range"`
	Description     string          `json:"description"`
	Requirements    []string        `json:"requirements"`
	Benefits        []string        `json:"benefits"`
	CreatedAt       time.Time       `json:"created_at,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at,omitempty"`
}

// ScoredJob is a JobPosting annotated with the match percentage computed for
// one candidate. Created per matching request and discarded after ranking.
type ScoredJob struct {
	Job           JobPosting `json:"job"`
	MatchPct      int        `json:"match_pct"`
	MatchedTokens []string   `json:"matched_tokens,omitempty"`
}
