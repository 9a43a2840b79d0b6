package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/ai-recruiter/internal/types"
)

// DefaultStageTimeout bounds every collaborator call unless overridden.
const DefaultStageTimeout = 2 * time.Minute

// Extractor turns raw resume input into structured text and fields.
type Extractor interface {
	Run(ctx context.Context, in types.ResumeInput) (*types.ExtractionResult, error)
}

// Analyzer derives a skills profile from an extraction result.
type Analyzer interface {
	Run(ctx context.Context, extracted *types.ExtractionResult) (*types.AnalysisResult, error)
}

// Matcher scores the candidate's skills against open job postings.
type Matcher interface {
	Match(ctx context.Context, skills []string, experienceLevel string) (*types.MatchResult, error)
}

// Screener produces a screening report from the serialized workflow state.
type Screener interface {
	Run(ctx context.Context, workflow string) (*types.ScreeningResult, error)
}

// Recommender produces the final hiring recommendation from the serialized
// workflow state.
type Recommender interface {
	Run(ctx context.Context, workflow string) (*types.RecommendationResult, error)
}

// Config wires the orchestrator's collaborators. Extractor, Analyzer and
// Matcher are mandatory; Screener and Recommender may be nil, which disables
// those stages and forwards the prior stage's result in their place.
type Config struct {
	Extractor   Extractor
	Analyzer    Analyzer
	Matcher     Matcher
	Screener    Screener
	Recommender Recommender

	StageTimeout time.Duration
	Logger       *zap.Logger
}

// optionalStage is resolved once at construction so the run loop never
// re-inspects collaborator presence.
type optionalStage[T any] struct {
	enabled bool
	handle  T
}

// Orchestrator drives resume applications through the workflow stages.
type Orchestrator struct {
	extractor Extractor
	analyzer  Analyzer
	matcher   Matcher
	screening optionalStage[Screener]
	recommend optionalStage[Recommender]

	stageTimeout time.Duration
	log          *zap.Logger
}

// New validates the configuration and builds an orchestrator.
func New(cfg Config) (*Orchestrator, error) {
	if cfg.Extractor == nil {
		return nil, fmt.Errorf("pipeline: extractor is required")
	}
	if cfg.Analyzer == nil {
		return nil, fmt.Errorf("pipeline: analyzer is required")
	}
	if cfg.Matcher == nil {
		return nil, fmt.Errorf("pipeline: matcher is required")
	}
	if cfg.StageTimeout <= 0 {
		cfg.StageTimeout = DefaultStageTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Orchestrator{
		extractor:    cfg.Extractor,
		analyzer:     cfg.Analyzer,
		matcher:      cfg.Matcher,
		screening:    optionalStage[Screener]{enabled: cfg.Screener != nil, handle: cfg.Screener},
		recommend:    optionalStage[Recommender]{enabled: cfg.Recommender != nil, handle: cfg.Recommender},
		stageTimeout: cfg.StageTimeout,
		log:          cfg.Logger,
	}, nil
}

// ProcessApplication runs one resume through the workflow. The returned
// context is always populated: on failure it carries status=failed, the
// stage that failed and the error message, alongside the results of every
// stage that did complete.
func (o *Orchestrator) ProcessApplication(ctx context.Context, resume types.ResumeInput) (WorkflowContext, error) {
	wc := WorkflowContext{
		ID:           uuid.New(),
		Status:       StatusInitiated,
		CurrentStage: StageExtraction,
		Resume:       resume,
		StartedAt:    time.Now().UTC(),
	}

	if resume.Empty() {
		return o.fail(wc, &ValidationError{Field: "resume", Reason: "no file path or raw text provided"})
	}

	o.log.Info("starting application workflow", zap.String("run_id", wc.ID.String()))

	extracted, err := runStage(ctx, o.stageTimeout, func(c context.Context) (*types.ExtractionResult, error) {
		return o.extractor.Run(c, resume)
	})
	if err != nil {
		return o.fail(wc, &StageError{Stage: StageExtraction, Err: err})
	}
	wc = wc.withExtraction(extracted)

	analyzed, err := runStage(ctx, o.stageTimeout, func(c context.Context) (*types.AnalysisResult, error) {
		return o.analyzer.Run(c, extracted)
	})
	if err != nil {
		return o.fail(wc, &StageError{Stage: StageAnalysis, Err: err})
	}
	wc = wc.withAnalysis(analyzed)

	matched, err := runStage(ctx, o.stageTimeout, func(c context.Context) (*types.MatchResult, error) {
		return o.matcher.Match(c, analyzed.SkillsAnalysis.TechnicalSkills, analyzed.SkillsAnalysis.ExperienceLevel)
	})
	if err != nil {
		return o.fail(wc, &StageError{Stage: StageMatching, Err: err})
	}
	wc = wc.withMatches(matched)

	screened, err := o.runScreening(ctx, wc)
	if err != nil {
		return o.fail(wc, &StageError{Stage: StageScreening, Err: err})
	}
	wc = wc.withScreening(screened)

	recommended, err := o.runRecommendation(ctx, wc)
	if err != nil {
		return o.fail(wc, &StageError{Stage: StageRecommendation, Err: err})
	}
	wc = wc.completed(recommended)

	o.log.Info("application workflow completed",
		zap.String("run_id", wc.ID.String()),
		zap.Int("matches", matched.NumberOfMatches),
		zap.Duration("elapsed", wc.CompletedAt.Sub(wc.StartedAt)))
	return wc, nil
}

// runScreening executes the screening stage, or forwards the match result
// when the stage is disabled. Collaborator errors degrade to the forwarded
// result; only run cancellation aborts the workflow.
func (o *Orchestrator) runScreening(ctx context.Context, wc WorkflowContext) (any, error) {
	if !o.screening.enabled {
		return wc.Matched, nil
	}
	res, err := runStage(ctx, o.stageTimeout, func(c context.Context) (*types.ScreeningResult, error) {
		return o.screening.handle.Run(c, wc.serialize())
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		o.log.Warn("screening degraded, forwarding match results",
			zap.String("run_id", wc.ID.String()), zap.Error(err))
		return wc.Matched, nil
	}
	return res, nil
}

// runRecommendation mirrors runScreening for the final stage, forwarding the
// screening payload when disabled or degraded.
func (o *Orchestrator) runRecommendation(ctx context.Context, wc WorkflowContext) (any, error) {
	if !o.recommend.enabled {
		return wc.Screened, nil
	}
	res, err := runStage(ctx, o.stageTimeout, func(c context.Context) (*types.RecommendationResult, error) {
		return o.recommend.handle.Run(c, wc.serialize())
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		o.log.Warn("recommendation degraded, forwarding screening results",
			zap.String("run_id", wc.ID.String()), zap.Error(err))
		return wc.Screened, nil
	}
	return res, nil
}

// runStage bounds one collaborator call with the stage timeout. The parent
// context is checked first so a cancelled run never starts another stage.
func runStage[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	stageCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(stageCtx)
}

func (o *Orchestrator) fail(wc WorkflowContext, err error) (WorkflowContext, error) {
	wc.Status = StatusFailed
	wc.Error = err.Error()
	wc.CompletedAt = time.Now().UTC()
	o.log.Error("application workflow failed",
		zap.String("run_id", wc.ID.String()),
		zap.String("stage", string(wc.CurrentStage)),
		zap.Error(err))
	return wc, err
}
