// Package store provides job posting persistence with Postgres and in-memory
// backends. Structured fields (salary range, requirements, benefits) are
// encoded as JSON at rest and decoded on read.
package store

import (
	"context"
	"fmt"

	"github.com/jonathan/ai-recruiter/internal/types"
)

// Store is the job posting storage contract consumed by the matching engine
// and the REST API. Implementations must be safe for concurrent readers and
// must never expose a partially written posting.
type Store interface {
	// AddJob persists a posting and returns it with its assigned ID.
	AddJob(ctx context.Context, job types.JobPosting) (types.JobPosting, error)
	// UpdateJob replaces the stored posting with the given ID.
	UpdateJob(ctx context.Context, job types.JobPosting) error
	// GetJob returns the posting with the given ID, or nil if absent.
	GetJob(ctx context.Context, id int64) (*types.JobPosting, error)
	// ListJobs returns all postings.
	ListJobs(ctx context.Context) ([]types.JobPosting, error)
	// FindByExperienceLevel returns postings tagged with the given level.
	// A posting whose encoded fields fail to decode is skipped with a
	// diagnostic; it never aborts the query.
	FindByExperienceLevel(ctx context.Context, level types.ExperienceLevel) ([]types.JobPosting, error)
	// CountJobs returns the number of stored postings.
	CountJobs(ctx context.Context) (int, error)
	// Close releases the backing resources.
	Close() error
}

// RecordError describes a single malformed stored record. Queries skip the
// record and surface this as a diagnostic rather than failing.
type RecordError struct {
	JobID int64
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("job record %d: malformed %s: %v", e.JobID, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
