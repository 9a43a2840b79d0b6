package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/ai-recruiter/internal/types"
)

// Memory is an in-memory Store used by tests and database-less CLI runs.
// Records are kept in their encoded at-rest form so reads exercise the same
// codec path as the Postgres backend.
type Memory struct {
	mu     sync.RWMutex
	nextID int64
	jobs   map[int64]memoryRecord
	log    *zap.Logger
}

type memoryRecord struct {
	job types.JobPosting // structured fields zeroed; held encoded below
	enc encodedFields
}

// NewMemory returns an empty in-memory store.
func NewMemory(log *zap.Logger) *Memory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Memory{nextID: 1, jobs: make(map[int64]memoryRecord), log: log}
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error { return nil }

// AddJob stores a posting and assigns it the next ID.
func (m *Memory) AddJob(_ context.Context, job types.JobPosting) (types.JobPosting, error) {
	enc, err := encodeJob(job)
	if err != nil {
		return types.JobPosting{}, fmt.Errorf("failed to encode job: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	job.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	m.jobs[job.ID] = memoryRecord{job: stripStructured(job), enc: enc}
	return job, nil
}

// UpdateJob replaces the stored posting with the given ID.
func (m *Memory) UpdateJob(_ context.Context, job types.JobPosting) error {
	enc, err := encodeJob(job)
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.jobs[job.ID]
	if !ok {
		return fmt.Errorf("job %d not found", job.ID)
	}
	job.CreatedAt = existing.job.CreatedAt
	job.UpdatedAt = time.Now().UTC()
	m.jobs[job.ID] = memoryRecord{job: stripStructured(job), enc: enc}
	return nil
}

// GetJob retrieves a posting by ID, returning nil when absent.
func (m *Memory) GetJob(_ context.Context, id int64) (*types.JobPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.jobs[id]
	if !ok {
		return nil, nil
	}
	job := rec.job
	if err := decodeJobFields(&job, rec.enc); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs returns all postings in insertion order.
func (m *Memory) ListJobs(ctx context.Context) ([]types.JobPosting, error) {
	return m.filter(ctx, func(types.JobPosting) bool { return true })
}

// FindByExperienceLevel returns postings tagged with the given level in
// insertion order. Malformed records are skipped with a diagnostic.
func (m *Memory) FindByExperienceLevel(ctx context.Context, level types.ExperienceLevel) ([]types.JobPosting, error) {
	return m.filter(ctx, func(job types.JobPosting) bool {
		return job.ExperienceLevel == level
	})
}

// CountJobs returns the number of stored postings.
func (m *Memory) CountJobs(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.jobs), nil
}

func (m *Memory) filter(_ context.Context, keep func(types.JobPosting) bool) ([]types.JobPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int64, 0, len(m.jobs))
	for id := range m.jobs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var jobs []types.JobPosting
	for _, id := range ids {
		rec := m.jobs[id]
		if !keep(rec.job) {
			continue
		}
		job := rec.job
		if err := decodeJobFields(&job, rec.enc); err != nil {
			recErr := err.(*RecordError)
			m.log.Warn("skipping malformed job record",
				zap.Int64("job_id", recErr.JobID),
				zap.String("field", recErr.Field),
				zap.Error(recErr.Err))
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// stripStructured zeroes the fields that are held encoded, so every read
// goes through the codec.
func stripStructured(job types.JobPosting) types.JobPosting {
	job.SalaryRange = nil
	job.Requirements = nil
	job.Benefits = nil
	return job
}
