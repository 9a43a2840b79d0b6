// Package matching scores job postings against a candidate's skills via
// token overlap and ranks the results.
package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/ai-recruiter/internal/tokenize"
	"github.com/jonathan/ai-recruiter/internal/types"
)

const (
	// DefaultScoreThreshold is the minimum match percentage a posting needs
	// to appear in the final output. A tuning constant, not derived from
	// data; overridable via Options.
	DefaultScoreThreshold = 30

	// DefaultTopMatches bounds the number of postings returned.
	DefaultTopMatches = 3
)

// JobSource is the read view of the job store consumed by the engine.
type JobSource interface {
	FindByExperienceLevel(ctx context.Context, level types.ExperienceLevel) ([]types.JobPosting, error)
}

// Options tune the presentation-layer filtering of match results.
type Options struct {
	// ScoreThreshold is inclusive: postings at exactly the threshold are kept.
	ScoreThreshold int
	// TopN truncates the ranked output.
	TopN int
}

// Engine matches candidates against stored job postings. All working state
// is local to one Match call, so a single Engine serves concurrent requests.
type Engine struct {
	jobs JobSource
	log  *zap.Logger
	opts Options
}

// NewEngine creates a matching engine over the given job source. Zero-valued
// options fall back to the defaults.
func NewEngine(jobs JobSource, log *zap.Logger, opts Options) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.ScoreThreshold == 0 {
		opts.ScoreThreshold = DefaultScoreThreshold
	}
	if opts.TopN == 0 {
		opts.TopN = DefaultTopMatches
	}
	return &Engine{jobs: jobs, log: log, opts: opts}
}

// NormalizeExperienceLevel maps a raw experience-level string onto the
// enumerated set via case-insensitive substring checks. Unrecognized input
// defaults to Mid-level; the second return value reports that fallback so
// callers can record it.
func NormalizeExperienceLevel(raw string) (types.ExperienceLevel, bool) {
	el := strings.ToLower(raw)
	switch {
	case strings.Contains(el, "senior"):
		return types.Senior, false
	case strings.Contains(el, "mid"):
		return types.MidLevel, false
	case strings.Contains(el, "entry"):
		return types.EntryLevel, false
	case strings.Contains(el, "junior"):
		return types.Junior, false
	default:
		return types.MidLevel, true
	}
}

// Match ranks open positions by compatibility with the candidate's skills.
//
// Postings scoring below the threshold are dropped, the rest are sorted
// strictly descending by match percentage (ties keep retrieval order) and
// truncated to the top N. NumberOfMatches reports the post-threshold count
// before truncation.
func (e *Engine) Match(ctx context.Context, skills []string, experienceLevelRaw string) (*types.MatchResult, error) {
	level, fallback := NormalizeExperienceLevel(experienceLevelRaw)
	if fallback {
		e.log.Warn("unrecognized experience level, defaulting",
			zap.String("raw", experienceLevelRaw),
			zap.String("default", string(level)))
	}

	scored, err := e.SearchJobs(ctx, skills, level)
	if err != nil {
		return nil, err
	}

	qualified := make([]types.ScoredJob, 0, len(scored))
	for _, sj := range scored {
		if sj.MatchPct >= e.opts.ScoreThreshold {
			qualified = append(qualified, sj)
		}
	}

	top := qualified
	if len(top) > e.opts.TopN {
		top = top[:e.opts.TopN]
	}

	matched := make([]types.MatchedJob, 0, len(top))
	for _, sj := range top {
		matched = append(matched, types.MatchedJob{
			Title:        fmt.Sprintf("%s at %s", sj.Job.Title, sj.Job.Company),
			MatchScore:   fmt.Sprintf("%d%%", sj.MatchPct),
			Location:     sj.Job.Location,
			SalaryRange:  sj.Job.SalaryRange,
			Requirements: sj.Job.Requirements,
		})
	}

	e.log.Info("matched jobs",
		zap.String("experience_level", string(level)),
		zap.Int("candidates_considered", len(scored)),
		zap.Int("qualified", len(qualified)))

	return &types.MatchResult{
		MatchedJobs:     matched,
		MatchTimestamp:  time.Now().UTC().Format(time.RFC3339),
		NumberOfMatches: len(qualified),
	}, nil
}

// SearchJobs scores every posting at the given level against the candidate's
// skills and returns the full pre-threshold ranking.
//
// A candidate with no usable skill tokens still matches every posting at 0%.
// Deliberate permissive behavior carried from the original matcher: an
// empty-skills candidate gets the complete level-filtered list rather than
// nothing.
func (e *Engine) SearchJobs(ctx context.Context, skills []string, level types.ExperienceLevel) ([]types.ScoredJob, error) {
	postings, err := e.jobs.FindByExperienceLevel(ctx, level)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch postings: %w", err)
	}

	candidateTokens := tokenize.TokenizeAll(skills)

	var scored []types.ScoredJob
	for _, job := range postings {
		reqTokens := tokenize.TokenizeAll(job.Requirements)
		if reqTokens.Len() == 0 {
			// Nothing to score against.
			continue
		}

		overlap := 0
		var matchedTokens []string
		for _, rt := range reqTokens.Sorted() {
			for ct := range candidateTokens {
				if tokenize.Overlaps(rt, ct) {
					overlap++
					matchedTokens = append(matchedTokens, rt)
					break
				}
			}
		}

		matchPct := int(math.Round(float64(overlap) / float64(reqTokens.Len()) * 100))

		if overlap > 0 || candidateTokens.Len() == 0 {
			scored = append(scored, types.ScoredJob{
				Job:           job,
				MatchPct:      matchPct,
				MatchedTokens: matchedTokens,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchPct > scored[j].MatchPct
	})
	return scored, nil
}
