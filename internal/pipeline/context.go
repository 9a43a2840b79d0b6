// Package pipeline orchestrates the five-stage recruitment workflow:
// extraction, analysis, matching, screening and recommendation.
package pipeline

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/ai-recruiter/internal/types"
)

// Status is the overall state of one workflow run.
type Status string

const (
	StatusInitiated Status = "initiated"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
)

// Stage identifies a step of the workflow. current_stage advances
// monotonically within one run.
type Stage string

const (
	StageExtraction     Stage = "extraction"
	StageAnalysis       Stage = "analysis"
	StageMatching       Stage = "matching"
	StageScreening      Stage = "screening"
	StageRecommendation Stage = "recommendation"
	StageCompleted      Stage = "completed"
)

// WorkflowContext accumulates the results of one application run. One value
// serves exactly one ProcessApplication invocation; stages produce new
// context values rather than mutating shared state, so concurrent runs never
// alias.
//
// Screened and Recommended hold either the collaborator's record or, when
// the stage is disabled or degrades, the prior stage's result forwarded
// unchanged.
type WorkflowContext struct {
	ID           uuid.UUID               `json:"id"`
	Status       Status                  `json:"status"`
	CurrentStage Stage                   `json:"current_stage"`
	Resume       types.ResumeInput       `json:"resume_data"`
	Extracted    *types.ExtractionResult `json:"extracted_data,omitempty"`
	Analyzed     *types.AnalysisResult   `json:"analyzed_data,omitempty"`
	Matched      *types.MatchResult      `json:"matched_data,omitempty"`
	Screened     any                     `json:"screened_data,omitempty"`
	Recommended  any                     `json:"recommended_data,omitempty"`
	Error        string                  `json:"error,omitempty"`
	StartedAt    time.Time               `json:"started_at"`
	CompletedAt  time.Time               `json:"completed_at,omitempty"`
}

// withExtraction returns a new context carrying the extraction result,
// advanced to the analysis stage.
func (wc WorkflowContext) withExtraction(res *types.ExtractionResult) WorkflowContext {
	wc.Extracted = res
	wc.CurrentStage = StageAnalysis
	return wc
}

// withAnalysis returns a new context carrying the analysis result, advanced
// to the matching stage.
func (wc WorkflowContext) withAnalysis(res *types.AnalysisResult) WorkflowContext {
	wc.Analyzed = res
	wc.CurrentStage = StageMatching
	return wc
}

// withMatches returns a new context carrying the match result, advanced to
// the screening stage.
func (wc WorkflowContext) withMatches(res *types.MatchResult) WorkflowContext {
	wc.Matched = res
	wc.CurrentStage = StageScreening
	return wc
}

// withScreening returns a new context carrying the screening payload,
// advanced to the recommendation stage.
func (wc WorkflowContext) withScreening(payload any) WorkflowContext {
	wc.Screened = payload
	wc.CurrentStage = StageRecommendation
	return wc
}

// completed returns the terminal successful context.
func (wc WorkflowContext) completed(recommendation any) WorkflowContext {
	wc.Recommended = recommendation
	wc.CurrentStage = StageCompleted
	wc.Status = StatusSuccess
	wc.CompletedAt = time.Now().UTC()
	return wc
}

// serialize renders the context as JSON for the free-text collaborators.
func (wc WorkflowContext) serialize() string {
	data, err := json.Marshal(wc)
	if err != nil {
		return "{}"
	}
	return string(data)
}
