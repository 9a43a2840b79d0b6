package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ai-recruiter/internal/store"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage the job posting store",
}

var jobsSeedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Load job postings from a JSON file into the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsSeed,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored job postings",
	RunE:  runJobsList,
}

var jobsConfigPath string

func init() {
	jobsCmd.PersistentFlags().StringVar(&jobsConfigPath, "config", "", "Path to config.json file")
	jobsCmd.AddCommand(jobsSeedCmd)
	jobsCmd.AddCommand(jobsListCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(jobsConfigPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required to seed a persistent store")
	}

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

	n, err := store.SeedFromFile(ctx, st, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Seeded %d job postings\n", n)
	return nil
}

func runJobsList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(jobsConfigPath)
	if err != nil {
		return err
	}

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

	jobs, err := st.ListJobs(ctx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("No job postings stored")
		return nil
	}
	for _, job := range jobs {
		fmt.Printf("%4d  %-12s  %s at %s (%s)\n",
			job.ID, job.ExperienceLevel, job.Title, job.Company, job.Location)
	}
	return nil
}
