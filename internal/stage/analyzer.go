package stage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/ai-recruiter/internal/llm"
	"github.com/jonathan/ai-recruiter/internal/schemas"
	"github.com/jonathan/ai-recruiter/internal/types"
)

const (
	// confidenceNormal applies when the model output validates cleanly;
	// confidenceDegraded when the default record had to be substituted.
	confidenceNormal   = 0.85
	confidenceDegraded = 0.5
)

const analyzerPrompt = `Analyze this resume data and return a JSON object with the following structure:

{
  "technical_skills": ["..."],
  "years_of_experience": 0,
  "education": {"degree": "...", "institution": "...", "graduation_year": 0},
  "experience_level": "...",
  "key_achievements": ["..."],
  "domain_expertise": ["..."]
}

Resume Data:
%s

Return only the JSON object, no other text.`

// Analyzer evaluates extracted resume data into a skill analysis.
type Analyzer struct {
	llm llm.Client
	log *zap.Logger
}

// NewAnalyzer creates the analysis collaborator.
func NewAnalyzer(client llm.Client, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{llm: client, log: log}
}

// Run analyzes the extraction output. Malformed model output is replaced by
// the documented all-empty default record with a degraded confidence score,
// never propagated as-is.
func (a *Analyzer) Run(ctx context.Context, extracted *types.ExtractionResult) (*types.AnalysisResult, error) {
	if extracted == nil {
		return nil, fmt.Errorf("no extraction result to analyze")
	}

	structuredJSON, err := json.Marshal(extracted.StructuredData)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize structured data: %w", err)
	}

	out, err := a.llm.CompleteJSON(ctx, fmt.Sprintf(analyzerPrompt, structuredJSON))
	if err != nil {
		return nil, fmt.Errorf("analysis query failed: %w", err)
	}

	analysis := schemas.DefaultSkillsAnalysis()
	confidence := confidenceDegraded
	decoded, err := schemas.DecodeAnalysis(out)
	if err != nil {
		var perr *schemas.ParseError
		if !errors.As(err, &perr) {
			return nil, err
		}
		a.log.Warn("analysis output failed validation, using default record", zap.Error(perr))
	} else {
		analysis = *decoded
		confidence = confidenceNormal
	}

	return &types.AnalysisResult{
		SkillsAnalysis:    analysis,
		AnalysisTimestamp: time.Now().UTC().Format(time.RFC3339),
		ConfidenceScore:   confidence,
	}, nil
}
