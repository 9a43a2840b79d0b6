package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ai-recruiter/internal/ingestion"
	"github.com/jonathan/ai-recruiter/internal/pipeline"
	"github.com/jonathan/ai-recruiter/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run [resume files...]",
	Short: "Run resumes through the recruitment workflow",
	Long: `Processes one or more resumes end-to-end: extraction -> analysis -> matching -> screening -> recommendation.

Resumes are given as file paths (.txt, .md, .html) or inline with --text.
Configuration can be loaded from a JSON file using --config; flags and
environment variables override config file values.`,
	RunE: runWorkflowCmd,
}

var (
	runConfigPath  string
	runText        string
	runJobsFile    string
	runAPIKey      string
	runScreen      bool
	runRecommend   bool
	runConcurrency int
	runJSONOutput  bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	runCommand.Flags().StringVar(&runText, "text", "", "Inline resume text (alternative to file arguments)")
	runCommand.Flags().StringVar(&runJobsFile, "jobs", "", "Path to job postings seed JSON")
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	runCommand.Flags().BoolVar(&runScreen, "screen", false, "Enable the screening stage")
	runCommand.Flags().BoolVar(&runRecommend, "recommend", false, "Enable the recommendation stage")
	runCommand.Flags().IntVar(&runConcurrency, "concurrency", 0, "Parallel workflows for multiple resumes")
	runCommand.Flags().BoolVar(&runJSONOutput, "json", false, "Print the full workflow context as JSON")

	rootCmd.AddCommand(runCommand)
}

func runWorkflowCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && runText == "" {
		return fmt.Errorf("provide at least one resume file or --text")
	}

	cfg, err := loadConfig(runConfigPath)
	if err != nil {
		return err
	}
	if runAPIKey != "" {
		cfg.APIKey = runAPIKey
	}
	if runJobsFile != "" {
		cfg.JobsFile = runJobsFile
	}
	cfg.EnableScreening = cfg.EnableScreening || runScreen
	cfg.EnableRecommender = cfg.EnableRecommender || runRecommend

	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx := cmd.Context()
	st, err := buildStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	orch, client, err := buildOrchestrator(ctx, cfg, st, log)
	if err != nil {
		return err
	}
	defer client.Close()

	inputs := make([]types.ResumeInput, 0, len(args)+1)
	for _, path := range args {
		inputs = append(inputs, types.ResumeInput{FilePath: path})
	}
	if runText != "" {
		inputs = append(inputs, types.ResumeInput{RawText: runText})
	}
	for _, in := range inputs {
		if err := ingestion.ValidateInput(in); err != nil {
			return err
		}
	}

	var results []pipeline.WorkflowContext
	if len(inputs) == 1 {
		wc, runErr := orch.ProcessApplication(ctx, inputs[0])
		results = []pipeline.WorkflowContext{wc}
		if runErr != nil {
			printResult(wc)
			return runErr
		}
	} else {
		results = orch.ProcessBatch(ctx, inputs, runConcurrency)
	}

	failed := 0
	for _, wc := range results {
		printResult(wc)
		if wc.Status == pipeline.StatusFailed {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d workflows failed", failed, len(results))
	}
	return nil
}

// printResult writes a human match report, or the raw workflow context with
// --json.
func printResult(wc pipeline.WorkflowContext) {
	if runJSONOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(wc)
		return
	}

	fmt.Printf("Run %s: %s (stage: %s)\n", wc.ID, wc.Status, wc.CurrentStage)
	if wc.Error != "" {
		fmt.Printf("  error: %s\n", wc.Error)
	}
	if wc.Analyzed != nil {
		fmt.Printf("  experience level: %s\n", wc.Analyzed.SkillsAnalysis.ExperienceLevel)
		fmt.Printf("  skills: %v\n", wc.Analyzed.SkillsAnalysis.TechnicalSkills)
	}
	if wc.Matched != nil {
		fmt.Printf("  matches: %d\n", wc.Matched.NumberOfMatches)
		for _, job := range wc.Matched.MatchedJobs {
			fmt.Printf("    %s  %s  %s\n", job.MatchScore, job.Title, job.Location)
		}
	}
	if rec, ok := wc.Recommended.(*types.RecommendationResult); ok {
		fmt.Printf("  recommendation: %s\n", rec.FinalRecommendation)
	}
}
