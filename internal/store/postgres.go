package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/jonathan/ai-recruiter/internal/types"
)

// Postgres implements Store on a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

const jobsSchema = `
CREATE TABLE IF NOT EXISTS jobs (
    id               BIGSERIAL PRIMARY KEY,
    title            TEXT NOT NULL,
    company          TEXT NOT NULL,
    location         TEXT NOT NULL DEFAULT '',
    employment_type  TEXT NOT NULL DEFAULT '',
    experience_level TEXT NOT NULL,
    salary_range     JSONB,
    description      TEXT NOT NULL DEFAULT '',
    requirements     JSONB,
    benefits         JSONB,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_jobs_experience_level ON jobs (experience_level);
`

const jobColumns = `id, title, company, location, employment_type, experience_level,
	        salary_range, description, requirements, benefits, created_at, updated_at`

// Connect establishes a connection pool to the database and ensures the jobs
// schema exists.
func Connect(ctx context.Context, databaseURL string, log *zap.Logger) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, jobsSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure jobs schema: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}
	return &Postgres{pool: pool, log: log}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// AddJob persists a posting and returns it with the store-assigned ID.
func (p *Postgres) AddJob(ctx context.Context, job types.JobPosting) (types.JobPosting, error) {
	enc, err := encodeJob(job)
	if err != nil {
		return types.JobPosting{}, fmt.Errorf("failed to encode job: %w", err)
	}

	err = p.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, location, employment_type, experience_level,
		                   salary_range, description, requirements, benefits)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		job.Title, job.Company, job.Location, job.EmploymentType, job.ExperienceLevel,
		enc.salaryRange, job.Description, enc.requirements, enc.benefits,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return types.JobPosting{}, fmt.Errorf("failed to insert job: %w", err)
	}
	return job, nil
}

// UpdateJob replaces the stored posting with the given ID.
func (p *Postgres) UpdateJob(ctx context.Context, job types.JobPosting) error {
	enc, err := encodeJob(job)
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}

	tag, err := p.pool.Exec(ctx,
		`UPDATE jobs SET title = $1, company = $2, location = $3, employment_type = $4,
		        experience_level = $5, salary_range = $6, description = $7,
		        requirements = $8, benefits = $9, updated_at = NOW()
		 WHERE id = $10`,
		job.Title, job.Company, job.Location, job.EmploymentType, job.ExperienceLevel,
		enc.salaryRange, job.Description, enc.requirements, enc.benefits, job.ID)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %d not found", job.ID)
	}
	return nil
}

// GetJob retrieves a posting by ID, returning nil when absent.
func (p *Postgres) GetJob(ctx context.Context, id int64) (*types.JobPosting, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)

	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// ListJobs returns all postings, skipping malformed records.
func (p *Postgres) ListJobs(ctx context.Context) ([]types.JobPosting, error) {
	return p.query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id`)
}

// FindByExperienceLevel returns postings tagged with the given level in
// insertion order. Malformed rows are skipped with a diagnostic.
func (p *Postgres) FindByExperienceLevel(ctx context.Context, level types.ExperienceLevel) ([]types.JobPosting, error) {
	return p.query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE experience_level = $1 ORDER BY id`, level)
}

// CountJobs returns the number of stored postings.
func (p *Postgres) CountJobs(ctx context.Context) (int, error) {
	var n int
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return n, nil
}

func (p *Postgres) query(ctx context.Context, sql string, args ...any) ([]types.JobPosting, error) {
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobPosting
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			if recErr, ok := err.(*RecordError); ok {
				p.log.Warn("skipping malformed job record",
					zap.Int64("job_id", recErr.JobID),
					zap.String("field", recErr.Field),
					zap.Error(recErr.Err))
				continue
			}
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}
	return jobs, nil
}

// scanJob reads one posting from a row, decoding the JSONB columns.
func scanJob(row pgx.Row) (types.JobPosting, error) {
	var job types.JobPosting
	var enc encodedFields

	err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Location,
		&job.EmploymentType, &job.ExperienceLevel, &enc.salaryRange,
		&job.Description, &enc.requirements, &enc.benefits,
		&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return types.JobPosting{}, err
	}

	if err := decodeJobFields(&job, enc); err != nil {
		return types.JobPosting{}, err
	}
	return job, nil
}
