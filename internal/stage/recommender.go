package stage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/ai-recruiter/internal/llm"
	"github.com/jonathan/ai-recruiter/internal/types"
)

const recommenderInstructions = `Generate a final hiring recommendation for this candidate.
Weigh the skill analysis, the matched positions, and the screening report.
State a clear recommendation (proceed / hold / reject) with supporting reasoning.

Candidate workflow data:
`

// Recommender produces the final free-text recommendation from the
// accumulated workflow data.
type Recommender struct {
	llm llm.Client
	log *zap.Logger
}

// NewRecommender creates the recommendation collaborator.
func NewRecommender(client llm.Client, log *zap.Logger) *Recommender {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recommender{llm: client, log: log}
}

// Run produces the final recommendation. The workflow argument is the
// serialized accumulated context.
func (r *Recommender) Run(ctx context.Context, workflow string) (*types.RecommendationResult, error) {
	text, err := r.llm.Complete(ctx, recommenderInstructions+workflow)
	if err != nil {
		return nil, fmt.Errorf("recommendation query failed: %w", err)
	}

	return &types.RecommendationResult{FinalRecommendation: text}, nil
}
