package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/ai-recruiter/internal/server"
	"github.com/jonathan/ai-recruiter/internal/server/ratelimit"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes job posting CRUD and resume application endpoints.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigPath string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = servePort
	}
	// Server runs always emit structured JSON logs.
	cfg.LogJSON = true

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

	orch, client, err := buildOrchestrator(ctx, cfg, st, log)
	if err != nil {
		st.Close()
		return err
	}
	defer client.Close()

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		Store:     st,
		Processor: orch,
		RateLimit: ratelimit.DefaultConfig(),
		Logger:    log,
	})
	if err != nil {
		st.Close()
		return err
	}

	return srv.Start()
}
