package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/ai-recruiter/internal/config"
	"github.com/jonathan/ai-recruiter/internal/ingestion"
	"github.com/jonathan/ai-recruiter/internal/llm"
	"github.com/jonathan/ai-recruiter/internal/logger"
	"github.com/jonathan/ai-recruiter/internal/matching"
	"github.com/jonathan/ai-recruiter/internal/pipeline"
	"github.com/jonathan/ai-recruiter/internal/stage"
	"github.com/jonathan/ai-recruiter/internal/store"
)

// loadConfig reads the optional config file, fills collaborator settings
// from the environment and validates the result.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.LogJSON, cfg.Debug)
}

// buildStore connects to Postgres when a database URL is configured and
// falls back to the in-memory store otherwise. A configured jobs file seeds
// the store before it is returned.
func buildStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.Store, error) {
	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.Connect(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		st = pg
	} else {
		st = store.NewMemory(log)
	}

	if cfg.JobsFile != "" {
		n, err := store.SeedFromFile(ctx, st, cfg.JobsFile)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to seed jobs: %w", err)
		}
		log.Info("seeded job postings", zap.Int("count", n), zap.String("file", cfg.JobsFile))
	}
	return st, nil
}

// buildOrchestrator assembles the workflow collaborators around one Gemini
// client. The caller owns closing the returned client.
func buildOrchestrator(ctx context.Context, cfg *config.Config, st store.Store, log *zap.Logger) (*pipeline.Orchestrator, llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg.Model = cfg.Model
	}
	client, err := llm.NewGeminiClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	engine := matching.NewEngine(st, log, matching.Options{
		ScoreThreshold: cfg.MatchThreshold,
		TopN:           cfg.TopMatches,
	})

	pcfg := pipeline.Config{
		Extractor:    stage.NewExtractor(client, ingestion.FileExtractor{}, log),
		Analyzer:     stage.NewAnalyzer(client, log),
		Matcher:      engine,
		StageTimeout: time.Duration(cfg.StageTimeoutSeconds) * time.Second,
		Logger:       log,
	}
	if cfg.EnableScreening {
		pcfg.Screener = stage.NewScreener(client, log)
	}
	if cfg.EnableRecommender {
		pcfg.Recommender = stage.NewRecommender(client, log)
	}

	orch, err := pipeline.New(pcfg)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return orch, client, nil
}
