package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, 8192, s.DefaultMaxTokens)
	assert.InDelta(t, 0.7, s.DefaultTemperature, 1e-9)
	assert.Equal(t, "workspace", s.WorkspaceRoot)
	assert.NotEmpty(t, s.HistoryDB)
}

func TestLoad_EnvOverridesModels(t *testing.T) {
	t.Setenv("CLAI_QA_MODEL", "gpt-4o-mini")
	t.Setenv("CLAI_SENIOR_DEV_MODEL", "claude-opus-4")

	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", s.Models.QA)
	assert.Equal(t, "claude-opus-4", s.Models.SeniorDev)
	assert.Empty(t, s.Models.Coder)
}

func TestLoad_GeminiKeyFallsBackToGoogleKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "g-key")
	os.Unsetenv("GEMINI_API_KEY")

	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "g-key", s.GoogleAPIKey)
	assert.Equal(t, "g-key", s.KeyForProvider("google"))
}

func TestLoad_ConfigFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"models": {"coder": "claude-3-7-sonnet"}, "default_max_tokens": 2048}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "claude-3-7-sonnet", s.Models.Coder)
	assert.Equal(t, 2048, s.DefaultMaxTokens)
}

func TestLoad_RejectsInvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"default_max_tokens": -5}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestValidateSettings_RejectsUnknownKeys(t *testing.T) {
	err := ValidateSettings(map[string]any{"budget": 5})
	require.Error(t, err)
}

func TestKeyForProvider(t *testing.T) {
	s := Settings{
		AnthropicAPIKey: "a",
		OpenAIAPIKey:    "o",
		GoogleAPIKey:    "g",
	}
	assert.Equal(t, "a", s.KeyForProvider("anthropic"))
	assert.Equal(t, "o", s.KeyForProvider("openai"))
	assert.Equal(t, "g", s.KeyForProvider("google"))
	assert.Empty(t, s.KeyForProvider("unknown"))
}
