package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"model": "gemini-2.0-flash",
		"match_threshold": 40,
		"top_matches": 5,
		"enable_screening": true,
		"port": 8080
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, 40, cfg.MatchThreshold)
	assert.Equal(t, 5, cfg.TopMatches)
	assert.True(t, cfg.EnableScreening)
	assert.False(t, cfg.EnableRecommender)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	assert.ErrorContains(t, err, "config path is empty")

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read config file")

	path := writeConfig(t, `{not json`)
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())

	cfg = &Config{MatchThreshold: 101}
	assert.ErrorContains(t, cfg.Validate(), "match_threshold")

	cfg = &Config{TopMatches: -1}
	assert.ErrorContains(t, cfg.Validate(), "top_matches")

	cfg = &Config{Port: 70000}
	assert.ErrorContains(t, cfg.Validate(), "port")

	cfg = &Config{JobsFile: filepath.Join(t.TempDir(), "missing.json")}
	assert.ErrorContains(t, cfg.Validate(), "jobs file not found")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg := &Config{}
	cfg.FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)

	cfg = &Config{APIKey: "file-key"}
	cfg.FromEnv()
	assert.Equal(t, "file-key", cfg.APIKey)
}
