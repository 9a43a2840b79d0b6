package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ai-recruiter/internal/types"
)

// DefaultBatchConcurrency limits parallel workflow runs in ProcessBatch.
const DefaultBatchConcurrency = 4

// ProcessBatch runs a set of resumes concurrently, at most concurrency
// workflows in flight at once. Each result lands at the index of its input;
// failed runs are returned as failed contexts rather than aborting the
// batch.
func (o *Orchestrator) ProcessBatch(ctx context.Context, inputs []types.ResumeInput, concurrency int) []WorkflowContext {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}
	results := make([]WorkflowContext, len(inputs))

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for i, in := range inputs {
		g.Go(func() error {
			wc, _ := o.ProcessApplication(ctx, in)
			results[i] = wc
			return nil
		})
	}
	_ = g.Wait()
	return results
}
