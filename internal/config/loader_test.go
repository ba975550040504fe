package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load(LoaderOptions{ConfigPaths: []string{t.TempDir()}})
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.BaseURL)
	assert.True(t, cfg.Observability.Logging.Enabled)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.Equal(t, "human", cfg.Observability.Logging.Format)
	assert.True(t, cfg.Observability.Logging.RedactAPIKeys)
	assert.True(t, cfg.Observability.Metrics.Enabled)
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	dir := t.TempDir()
	contents := `apiKey: file-key
model: gemini-2.5-pro
baseURL: http://localhost:8080/v1beta
observability:
  logging:
    enabled: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gemini.yaml"), []byte(contents), 0o644))

	cfg, err := Load(LoaderOptions{ConfigPaths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "http://localhost:8080/v1beta", cfg.BaseURL)
	assert.False(t, cfg.Observability.Logging.Enabled)
	assert.True(t, cfg.Observability.Metrics.Enabled)
}

func TestLoad_EnvFallbackForAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load(LoaderOptions{ConfigPaths: []string{t.TempDir()}})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoad_ExpandsEnvVarsInAPIKey(t *testing.T) {
	t.Setenv("MY_SECRET", "expanded-key")
	t.Setenv("GEMINI_API_KEY", "")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gemini.yaml"), []byte("apiKey: ${MY_SECRET}\n"), 0o644))

	cfg, err := Load(LoaderOptions{ConfigPaths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, "expanded-key", cfg.APIKey)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gemini.yaml"), []byte("model: [unclosed\n"), 0o644))

	_, err := Load(LoaderOptions{ConfigPaths: []string{dir}})
	assert.Error(t, err)
}

func TestExpandEnvString(t *testing.T) {
	t.Setenv("TEST_API_KEY", "secret-key-123")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "expand ${VAR} syntax",
			input:    "${TEST_API_KEY}",
			expected: "secret-key-123",
		},
		{
			name:     "expand $VAR syntax",
			input:    "$TEST_API_KEY",
			expected: "secret-key-123",
		},
		{
			name:     "expand in middle of string",
			input:    "key:${TEST_API_KEY}:end",
			expected: "key:secret-key-123:end",
		},
		{
			name:     "leave non-existent var unchanged",
			input:    "${NONEXISTENT_VAR}",
			expected: "${NONEXISTENT_VAR}",
		},
		{
			name:     "handle empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "handle string without variables",
			input:    "plain-text",
			expected: "plain-text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandEnvString(tt.input))
		})
	}
}
