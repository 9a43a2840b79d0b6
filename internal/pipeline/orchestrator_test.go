package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ai-recruiter/internal/types"
)

type fakeExtractor struct {
	result *types.ExtractionResult
	err    error
	calls  int
	block  bool
}

func (f *fakeExtractor) Run(ctx context.Context, in types.ResumeInput) (*types.ExtractionResult, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.result, f.err
}

type fakeAnalyzer struct {
	result *types.AnalysisResult
	err    error
}

func (f *fakeAnalyzer) Run(ctx context.Context, extracted *types.ExtractionResult) (*types.AnalysisResult, error) {
	return f.result, f.err
}

type fakeMatcher struct {
	result *types.MatchResult
	err    error
	skills []string
	level  string
}

func (f *fakeMatcher) Match(ctx context.Context, skills []string, experienceLevel string) (*types.MatchResult, error) {
	f.skills = skills
	f.level = experienceLevel
	return f.result, f.err
}

type fakeScreener struct {
	result   *types.ScreeningResult
	err      error
	workflow string
}

func (f *fakeScreener) Run(ctx context.Context, workflow string) (*types.ScreeningResult, error) {
	f.workflow = workflow
	return f.result, f.err
}

type fakeRecommender struct {
	result *types.RecommendationResult
	err    error
}

func (f *fakeRecommender) Run(ctx context.Context, workflow string) (*types.RecommendationResult, error) {
	return f.result, f.err
}

func workingMandatory() (*fakeExtractor, *fakeAnalyzer, *fakeMatcher) {
	extractor := &fakeExtractor{result: &types.ExtractionResult{
		RawText:          "Python developer, five years",
		ExtractionStatus: "completed",
	}}
	analyzer := &fakeAnalyzer{result: &types.AnalysisResult{
		SkillsAnalysis: types.SkillsAnalysis{
			TechnicalSkills: []string{"Python", "SQL"},
			ExperienceLevel: "Senior",
		},
		ConfidenceScore: 0.85,
	}}
	matcher := &fakeMatcher{result: &types.MatchResult{
		MatchedJobs: []types.MatchedJob{
			{Title: "Backend Engineer at Initech", MatchScore: "72%"},
		},
		NumberOfMatches: 1,
	}}
	return extractor, analyzer, matcher
}

func TestNewRequiresMandatoryCollaborators(t *testing.T) {
	extractor, analyzer, matcher := workingMandatory()

	_, err := New(Config{Analyzer: analyzer, Matcher: matcher})
	require.ErrorContains(t, err, "extractor is required")

	_, err = New(Config{Extractor: extractor, Matcher: matcher})
	require.ErrorContains(t, err, "analyzer is required")

	_, err = New(Config{Extractor: extractor, Analyzer: analyzer})
	require.ErrorContains(t, err, "matcher is required")
}

func TestProcessApplicationWithoutOptionalStages(t *testing.T) {
	extractor, analyzer, matcher := workingMandatory()
	o, err := New(Config{Extractor: extractor, Analyzer: analyzer, Matcher: matcher})
	require.NoError(t, err)

	wc, err := o.ProcessApplication(context.Background(), types.ResumeInput{RawText: "resume text"})
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, wc.Status)
	assert.Equal(t, StageCompleted, wc.CurrentStage)
	assert.Equal(t, extractor.result, wc.Extracted)
	assert.Equal(t, analyzer.result, wc.Analyzed)
	assert.Equal(t, matcher.result, wc.Matched)

	// Disabled stages forward the prior stage's result unchanged.
	assert.Equal(t, wc.Matched, wc.Screened)
	assert.Equal(t, wc.Screened, wc.Recommended)

	assert.Equal(t, []string{"Python", "SQL"}, matcher.skills)
	assert.Equal(t, "Senior", matcher.level)
	assert.False(t, wc.CompletedAt.IsZero())
}

func TestProcessApplicationFullWorkflow(t *testing.T) {
	extractor, analyzer, matcher := workingMandatory()
	screener := &fakeScreener{result: &types.ScreeningResult{
		ScreeningReport: "Strong candidate",
		ScreeningScore:  85,
		ScreeningStatus: "completed",
	}}
	recommender := &fakeRecommender{result: &types.RecommendationResult{
		FinalRecommendation: "Proceed to interview",
	}}
	o, err := New(Config{
		Extractor:   extractor,
		Analyzer:    analyzer,
		Matcher:     matcher,
		Screener:    screener,
		Recommender: recommender,
	})
	require.NoError(t, err)

	wc, err := o.ProcessApplication(context.Background(), types.ResumeInput{RawText: "resume text"})
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, wc.Status)
	assert.Equal(t, screener.result, wc.Screened)
	assert.Equal(t, recommender.result, wc.Recommended)

	// The screener sees the serialized workflow state including the matches.
	assert.Contains(t, screener.workflow, `"matched_data"`)
	assert.Contains(t, screener.workflow, "Backend Engineer at Initech")
}

func TestProcessApplicationRejectsEmptyInput(t *testing.T) {
	extractor, analyzer, matcher := workingMandatory()
	o, err := New(Config{Extractor: extractor, Analyzer: analyzer, Matcher: matcher})
	require.NoError(t, err)

	wc, err := o.ProcessApplication(context.Background(), types.ResumeInput{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StatusFailed, wc.Status)
	assert.Equal(t, StageExtraction, wc.CurrentStage)
	assert.Zero(t, extractor.calls)
}

func TestProcessApplicationAnalysisFailure(t *testing.T) {
	extractor, _, matcher := workingMandatory()
	analyzer := &fakeAnalyzer{err: errors.New("model unavailable")}
	o, err := New(Config{Extractor: extractor, Analyzer: analyzer, Matcher: matcher})
	require.NoError(t, err)

	wc, err := o.ProcessApplication(context.Background(), types.ResumeInput{RawText: "resume text"})

	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageAnalysis, serr.Stage)

	assert.Equal(t, StatusFailed, wc.Status)
	assert.Equal(t, StageAnalysis, wc.CurrentStage)
	assert.NotEmpty(t, wc.Error)
	assert.NotNil(t, wc.Extracted)
	assert.Nil(t, wc.Matched)
	assert.Nil(t, wc.Screened)
	assert.Nil(t, wc.Recommended)
}

func TestProcessApplicationScreenerFailureDegrades(t *testing.T) {
	extractor, analyzer, matcher := workingMandatory()
	screener := &fakeScreener{err: errors.New("screener down")}
	o, err := New(Config{
		Extractor: extractor,
		Analyzer:  analyzer,
		Matcher:   matcher,
		Screener:  screener,
	})
	require.NoError(t, err)

	wc, err := o.ProcessApplication(context.Background(), types.ResumeInput{RawText: "resume text"})
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, wc.Status)
	assert.Equal(t, wc.Matched, wc.Screened)
	assert.Equal(t, wc.Screened, wc.Recommended)
}

func TestProcessApplicationStageTimeout(t *testing.T) {
	extractor := &fakeExtractor{block: true}
	_, analyzer, matcher := workingMandatory()
	o, err := New(Config{
		Extractor:    extractor,
		Analyzer:     analyzer,
		Matcher:      matcher,
		StageTimeout: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	wc, err := o.ProcessApplication(context.Background(), types.ResumeInput{RawText: "resume text"})

	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageExtraction, serr.Stage)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StatusFailed, wc.Status)
}

func TestProcessApplicationCancelledContext(t *testing.T) {
	extractor, analyzer, matcher := workingMandatory()
	o, err := New(Config{Extractor: extractor, Analyzer: analyzer, Matcher: matcher})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wc, err := o.ProcessApplication(ctx, types.ResumeInput{RawText: "resume text"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusFailed, wc.Status)
	assert.Zero(t, extractor.calls)
}

func TestWorkflowContextSerializeOmitsEmptyStages(t *testing.T) {
	wc := WorkflowContext{Status: StatusInitiated, CurrentStage: StageExtraction}
	doc := wc.serialize()
	assert.False(t, strings.Contains(doc, "matched_data"))
	assert.Contains(t, doc, `"current_stage":"extraction"`)
}

type countingMatcher struct {
	fakeMatcher
	failOn string
}

func (m *countingMatcher) Match(ctx context.Context, skills []string, level string) (*types.MatchResult, error) {
	if level == m.failOn {
		return nil, fmt.Errorf("store unavailable")
	}
	return m.fakeMatcher.Match(ctx, skills, level)
}

func TestProcessBatchAlignsResultsWithInputs(t *testing.T) {
	extractor, _, base := workingMandatory()
	matcher := &countingMatcher{fakeMatcher: *base, failOn: "Junior"}

	calls := 0
	analyzer := &sequencedAnalyzer{levels: []string{"Senior", "Junior", "Senior"}, calls: &calls}
	o, err := New(Config{Extractor: extractor, Analyzer: analyzer, Matcher: matcher})
	require.NoError(t, err)

	inputs := []types.ResumeInput{
		{RawText: "first resume"},
		{RawText: "second resume"},
		{RawText: "third resume"},
	}
	results := o.ProcessBatch(context.Background(), inputs, 1)
	require.Len(t, results, 3)

	assert.Equal(t, StatusSuccess, results[0].Status)
	assert.Equal(t, StatusFailed, results[1].Status)
	assert.Equal(t, StageMatching, results[1].CurrentStage)
	assert.Equal(t, StatusSuccess, results[2].Status)
	assert.Equal(t, inputs[2], results[2].Resume)
}

// sequencedAnalyzer hands out experience levels in call order. Safe only
// with single-worker batches.
type sequencedAnalyzer struct {
	levels []string
	calls  *int
}

func (a *sequencedAnalyzer) Run(ctx context.Context, extracted *types.ExtractionResult) (*types.AnalysisResult, error) {
	level := a.levels[*a.calls%len(a.levels)]
	*a.calls++
	return &types.AnalysisResult{
		SkillsAnalysis:  types.SkillsAnalysis{TechnicalSkills: []string{"Go"}, ExperienceLevel: level},
		ConfidenceScore: 0.85,
	}, nil
}

type staticExtractor struct{ result *types.ExtractionResult }

func (s staticExtractor) Run(ctx context.Context, in types.ResumeInput) (*types.ExtractionResult, error) {
	return s.result, nil
}

type staticAnalyzer struct{ result *types.AnalysisResult }

func (s staticAnalyzer) Run(ctx context.Context, extracted *types.ExtractionResult) (*types.AnalysisResult, error) {
	return s.result, nil
}

type staticMatcher struct{ result *types.MatchResult }

func (s staticMatcher) Match(ctx context.Context, skills []string, level string) (*types.MatchResult, error) {
	return s.result, nil
}

func TestProcessBatchConcurrent(t *testing.T) {
	base, baseAnalyzer, baseMatcher := workingMandatory()
	o, err := New(Config{
		Extractor: staticExtractor{result: base.result},
		Analyzer:  staticAnalyzer{result: baseAnalyzer.result},
		Matcher:   staticMatcher{result: baseMatcher.result},
	})
	require.NoError(t, err)

	inputs := make([]types.ResumeInput, 8)
	for i := range inputs {
		inputs[i] = types.ResumeInput{RawText: fmt.Sprintf("resume %d", i)}
	}
	results := o.ProcessBatch(context.Background(), inputs, 4)
	require.Len(t, results, 8)
	for i, wc := range results {
		assert.Equal(t, StatusSuccess, wc.Status, "result %d", i)
		assert.Equal(t, inputs[i], wc.Resume)
	}
}
