// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents settings that can be loaded from a JSON file. All fields
// are optional; missing values use defaults or come from CLI flags and
// environment variables.
type Config struct {
	// Collaborators
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // Gemini model name
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Paths
	JobsFile string `json:"jobs_file,omitempty"` // Path to seed job postings JSON

	// Matching
	MatchThreshold int `json:"match_threshold,omitempty"` // Minimum match percentage to qualify
	TopMatches     int `json:"top_matches,omitempty"`     // Maximum matched jobs returned

	// Workflow
	StageTimeoutSeconds int  `json:"stage_timeout_seconds,omitempty"` // Per-stage deadline
	EnableScreening     bool `json:"enable_screening,omitempty"`
	EnableRecommender   bool `json:"enable_recommender,omitempty"`

	// Server
	Port int `json:"port,omitempty"`

	// Logging
	LogJSON bool `json:"log_json,omitempty"`
	Debug   bool `json:"debug,omitempty"`
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills collaborator settings from the environment where the config
// file left them empty.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate checks that the configuration has sane values. Required fields
// are enforced by the commands that need them.
func (c *Config) Validate() error {
	if c.MatchThreshold < 0 || c.MatchThreshold > 100 {
		return fmt.Errorf("config error: 'match_threshold' must be between 0 and 100")
	}
	if c.TopMatches < 0 {
		return fmt.Errorf("config error: 'top_matches' must be non-negative")
	}
	if c.StageTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'stage_timeout_seconds' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	if c.JobsFile != "" {
		if _, err := os.Stat(c.JobsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.JobsFile)
		}
	}
	return nil
}
