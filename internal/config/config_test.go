package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"region": "Europe",
		"role": "marketing",
		"experience_years": 4.5,
		"top_k": 20,
		"verbose": true
	}`

	cfg, err := LoadConfig(writeConfig(t, "config.json", content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Europe", cfg.Region)
	assert.Equal(t, "marketing", cfg.Role)
	assert.Equal(t, 4.5, cfg.ExperienceYears)
	assert.Equal(t, 20, cfg.TopK)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	content := "region: latam\nrole: sdr\nworkers: 8\nlog_level: debug\n"

	cfg, err := LoadConfig(writeConfig(t, "config.yaml", content))
	require.NoError(t, err)

	assert.Equal(t, "latam", cfg.Region)
	assert.Equal(t, "sdr", cfg.Role)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_EmptyYAML(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "config.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)
}

func TestLoadConfig_UnknownYAMLField(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "config.yml", "regoin: NA\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "config.json", `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty", cfg: Config{}},
		{name: "defaults", cfg: Defaults()},
		{name: "aliases", cfg: Config{Region: "emea", Role: "swe"}},
		{name: "negative years", cfg: Config{ExperienceYears: -1}, wantErr: "'experience_years' failed 'gte' check"},
		{name: "top_k too large", cfg: Config{TopK: 500}, wantErr: "'top_k' failed 'lte' check"},
		{name: "negative workers", cfg: Config{Workers: -2}, wantErr: "'workers'"},
		{name: "tiny dimensions", cfg: Config{Dimensions: 4}, wantErr: "'dimensions' failed 'min' check"},
		{name: "bad log level", cfg: Config{LogLevel: "loud"}, wantErr: "'log_level' failed 'oneof' check"},
		{name: "unknown region", cfg: Config{Region: "Antarctica"}, wantErr: `unsupported region "Antarctica"`},
		{name: "unknown role", cfg: Config{Role: "astronaut"}, wantErr: `unsupported role "astronaut"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config error")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		Role: "marketing",
		TopK: 5,
	}

	merged := partial.MergeWithDefaults(Defaults())

	// Custom values should be preserved
	assert.Equal(t, "marketing", merged.Role)
	assert.Equal(t, 5, merged.TopK)

	// Default values should fill in empty fields
	assert.Equal(t, "North America", merged.Region)
	assert.Equal(t, 4, merged.Workers)
	assert.Equal(t, 100, merged.Dimensions)
	assert.Equal(t, "info", merged.LogLevel)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Region: "Europe", Workers: 2}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, cfg, merged)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvRegion, "LATAM")
	t.Setenv(EnvRole, "data science")
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv(EnvWorkers, "12")

	cfg := Config{Region: "Europe", Workers: 2}
	require.NoError(t, cfg.ApplyEnvOverrides())

	assert.Equal(t, "LATAM", cfg.Region)
	assert.Equal(t, "data science", cfg.Role)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 12, cfg.Workers)
}

func TestApplyEnvOverrides_BadWorkers(t *testing.T) {
	t.Setenv(EnvWorkers, "many")

	cfg := Config{}
	err := cfg.ApplyEnvOverrides()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvWorkers)
}
