package stage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/ai-recruiter/internal/llm"
	"github.com/jonathan/ai-recruiter/internal/types"
)

// DefaultScreeningScore is assigned when the free-text screening report
// carries no machine-readable score. Carried from the original screener.
const DefaultScreeningScore = 85

const screenerInstructions = `Screen this candidate based on:
- Qualification alignment
- Experience relevance
- Skill match percentage
- Cultural fit indicators
- Red flags or concerns
Provide a comprehensive screening report.

Candidate workflow data:
`

// Screener produces a free-text screening report from the accumulated
// workflow data, normalized into a ScreeningResult.
type Screener struct {
	llm llm.Client
	log *zap.Logger
}

// NewScreener creates the screening collaborator.
func NewScreener(client llm.Client, log *zap.Logger) *Screener {
	if log == nil {
		log = zap.NewNop()
	}
	return &Screener{llm: client, log: log}
}

// Run screens the candidate. The workflow argument is the serialized
// accumulated context so the model sees all prior stage results.
func (s *Screener) Run(ctx context.Context, workflow string) (*types.ScreeningResult, error) {
	report, err := s.llm.Complete(ctx, screenerInstructions+workflow)
	if err != nil {
		return nil, fmt.Errorf("screening query failed: %w", err)
	}

	return &types.ScreeningResult{
		ScreeningReport: report,
		ScreeningScore:  DefaultScreeningScore,
		ScreeningStatus: StatusCompleted,
	}, nil
}
