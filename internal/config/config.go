// Package config provides configuration loading and management for clai.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings is the resolved application configuration. API keys are read
// once at startup and treated as read-only for the process lifetime.
type Settings struct {
	AnthropicAPIKey string `json:"-" mapstructure:"anthropic_api_key"`
	OpenAIAPIKey    string `json:"-" mapstructure:"openai_api_key"`
	GoogleAPIKey    string `json:"-" mapstructure:"google_api_key"`

	Models ModelOverrides `json:"models" mapstructure:"models"`

	DefaultMaxTokens   int     `json:"default_max_tokens"  mapstructure:"default_max_tokens"`
	DefaultTemperature float64 `json:"default_temperature" mapstructure:"default_temperature"`

	WorkspaceRoot string `json:"workspace_root" mapstructure:"workspace_root"`
	HistoryDB     string `json:"history_db"     mapstructure:"history_db"`
}

// ModelOverrides carries per-role model name overrides.
type ModelOverrides struct {
	SeniorDev string `json:"senior_dev,omitempty" mapstructure:"senior_dev"`
	Coder     string `json:"coder,omitempty"      mapstructure:"coder"`
	Coder2    string `json:"coder_2,omitempty"    mapstructure:"coder_2"`
	QA        string `json:"qa,omitempty"         mapstructure:"qa"`
	BA        string `json:"ba,omitempty"         mapstructure:"ba"`
	Reviewer  string `json:"reviewer,omitempty"   mapstructure:"reviewer"`
}

const (
	defaultMaxTokens   = 8192
	defaultTemperature = 0.7
)

// Load reads settings from the optional config file, the environment, and
// a best-effort .env file, in increasing precedence for env values.
func Load(cfgFile string) (Settings, error) {
	// Missing .env is fine; explicit env vars win over file entries.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("default_max_tokens", defaultMaxTokens)
	v.SetDefault("default_temperature", defaultTemperature)
	v.SetDefault("workspace_root", "workspace")
	v.SetDefault("history_db", defaultHistoryDBPath())

	bindings := map[string][]string{
		"anthropic_api_key":   {"ANTHROPIC_API_KEY"},
		"openai_api_key":      {"OPENAI_API_KEY"},
		"google_api_key":      {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
		"models.senior_dev":   {"CLAI_SENIOR_DEV_MODEL"},
		"models.coder":        {"CLAI_CODER_MODEL"},
		"models.coder_2":      {"CLAI_CODER2_MODEL"},
		"models.qa":           {"CLAI_QA_MODEL"},
		"models.ba":           {"CLAI_BA_MODEL"},
		"models.reviewer":     {"CLAI_REVIEWER_MODEL"},
		"default_max_tokens":  {"CLAI_DEFAULT_MAX_TOKENS"},
		"default_temperature": {"CLAI_DEFAULT_TEMPERATURE"},
		"workspace_root":      {"CLAI_WORKSPACE_ROOT"},
		"history_db":          {"CLAI_HISTORY_DB"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return Settings{}, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if cfgFile == "" {
		cfgFile = filepath.Join(".clai", "config.json")
	}
	if raw, err := os.ReadFile(cfgFile); err == nil {
		if err := ValidateRaw(raw); err != nil {
			return Settings{}, err
		}
		v.SetConfigFile(cfgFile)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}
	if s.DefaultTemperature < 0 || s.DefaultTemperature > 2 {
		return Settings{}, fmt.Errorf("default_temperature must be within [0, 2], got %v", s.DefaultTemperature)
	}
	if s.DefaultMaxTokens <= 0 {
		return Settings{}, fmt.Errorf("default_max_tokens must be > 0, got %d", s.DefaultMaxTokens)
	}
	return s, nil
}

// KeyForProvider returns the configured API key for a provider name.
func (s Settings) KeyForProvider(provider string) string {
	switch provider {
	case "anthropic":
		return s.AnthropicAPIKey
	case "openai":
		return s.OpenAIAPIKey
	case "google":
		return s.GoogleAPIKey
	}
	return ""
}

func defaultHistoryDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".clai", "clai.db")
	}
	return filepath.Join(home, ".clai", "clai.db")
}
