// Package team defines the AI team roles and their static configuration.
package team

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/claidev/clai/internal/config"
)

// Role is a named team persona bound to one provider and one system prompt.
type Role string

const (
	SeniorDev Role = "senior_dev"
	Coder     Role = "coder"
	Coder2    Role = "coder_2"
	QA        Role = "qa"
	BA        Role = "ba"
	Reviewer  Role = "reviewer"
)

// ErrUnknownRole is returned when a role name does not resolve.
var ErrUnknownRole = errors.New("unknown role")

// Provider names, matching llm.Provider.Name implementations.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGoogle    = "google"
)

// Config is the immutable startup configuration for one role.
type Config struct {
	Role         Role
	Name         string
	Description  string
	Provider     string
	Model        string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
}

//go:embed prompts/*.md
var promptsFS embed.FS

type roleSpec struct {
	name        string
	description string
	provider    string
	model       string
	temperature float64
	maxTokens   int
}

var roleSpecs = map[Role]roleSpec{
	SeniorDev: {
		name:        "Senior Developer",
		description: "Technical leader for architecture, complex coding, and code review",
		provider:    ProviderAnthropic,
		model:       "claude-sonnet-4-20250514",
		temperature: 0.5,
		maxTokens:   8192,
	},
	Coder: {
		name:        "Coder",
		description: "Implementation specialist for rapid, high-quality coding",
		provider:    ProviderAnthropic,
		model:       "claude-sonnet-4-5-20250514",
		temperature: 0.6,
		maxTokens:   4096,
	},
	Coder2: {
		name:        "Coder 2 (Gemini)",
		description: "Secondary coder with massive context for large codebases",
		provider:    ProviderGoogle,
		model:       "gemini-2.0-flash",
		temperature: 0.6,
		maxTokens:   8192,
	},
	QA: {
		name:        "QA Engineer",
		description: "Quality guardian for testing, bug finding, and validation",
		provider:    ProviderOpenAI,
		model:       "gpt-4o",
		temperature: 0.4,
		maxTokens:   4096,
	},
	BA: {
		name:        "Business Analyst",
		description: "Requirements specialist for specifications and business analysis",
		provider:    ProviderGoogle,
		model:       "gemini-1.5-pro",
		temperature: 0.7,
		maxTokens:   4096,
	},
	Reviewer: {
		name:        "Code Reviewer",
		description: "Review specialist for fast, actionable code feedback",
		provider:    ProviderAnthropic,
		model:       "claude-sonnet-4-20250514",
		temperature: 0.5,
		maxTokens:   2048,
	},
}

// Roles returns all roles in presentation order.
func Roles() []Role {
	return []Role{SeniorDev, Coder, Coder2, QA, BA, Reviewer}
}

// Parse resolves a role name to a Role.
func Parse(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleSpecs[role]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return role, nil
}

// Registry resolves role configurations at startup, applying model
// overrides from settings. The result is read-only for the process
// lifetime.
type Registry struct {
	configs map[Role]Config
}

// NewRegistry builds the role registry from settings.
func NewRegistry(settings config.Settings) (*Registry, error) {
	overrides := map[Role]string{
		SeniorDev: settings.Models.SeniorDev,
		Coder:     settings.Models.Coder,
		Coder2:    settings.Models.Coder2,
		QA:        settings.Models.QA,
		BA:        settings.Models.BA,
		Reviewer:  settings.Models.Reviewer,
	}

	configs := make(map[Role]Config, len(roleSpecs))
	for role, spec := range roleSpecs {
		prompt, err := loadPrompt(role)
		if err != nil {
			return nil, err
		}
		model := spec.model
		if override := overrides[role]; override != "" {
			model = override
		}
		temperature := spec.temperature
		if temperature == 0 {
			temperature = settings.DefaultTemperature
		}
		maxTokens := spec.maxTokens
		if maxTokens == 0 {
			maxTokens = settings.DefaultMaxTokens
		}
		configs[role] = Config{
			Role:         role,
			Name:         spec.name,
			Description:  spec.description,
			Provider:     spec.provider,
			Model:        model,
			SystemPrompt: prompt,
			Temperature:  temperature,
			MaxTokens:    maxTokens,
		}
	}
	return &Registry{configs: configs}, nil
}

// Lookup returns the configuration for a role.
func (r *Registry) Lookup(role Role) (Config, error) {
	cfg, ok := r.configs[role]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return cfg, nil
}

func loadPrompt(role Role) (string, error) {
	data, err := promptsFS.ReadFile(fmt.Sprintf("prompts/%s.md", role))
	if err != nil {
		return "", fmt.Errorf("load system prompt for %s: %w", role, err)
	}
	return strings.TrimSpace(string(data)), nil
}
