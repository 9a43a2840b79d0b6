// Package main provides the entry point for the AI recruiter CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "recruiter",
	Short:   "AI recruitment workflow",
	Long:    "Recruiter runs resumes through extraction, skills analysis, job matching, screening and recommendation, against a store of job postings.",
	Version: "0.1.0",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
