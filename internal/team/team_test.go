package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claidev/clai/internal/config"
)

func TestParse(t *testing.T) {
	role, err := Parse("qa")
	require.NoError(t, err)
	assert.Equal(t, QA, role)

	role, err = Parse("  Senior_Dev ")
	require.NoError(t, err)
	assert.Equal(t, SeniorDev, role)

	_, err = Parse("cfo")
	require.ErrorIs(t, err, ErrUnknownRole)
}

func TestNewRegistry_EveryRoleHasOneProviderAndPrompt(t *testing.T) {
	reg, err := NewRegistry(config.Settings{})
	require.NoError(t, err)

	providers := map[string]bool{
		ProviderAnthropic: true,
		ProviderOpenAI:    true,
		ProviderGoogle:    true,
	}
	for _, role := range Roles() {
		cfg, err := reg.Lookup(role)
		require.NoError(t, err)
		assert.Equal(t, role, cfg.Role)
		assert.True(t, providers[cfg.Provider], "role %s has unknown provider %q", role, cfg.Provider)
		assert.NotEmpty(t, cfg.SystemPrompt, "role %s has no system prompt", role)
		assert.NotEmpty(t, cfg.Model, "role %s has no model", role)
		assert.Positive(t, cfg.MaxTokens)
	}
}

func TestNewRegistry_AppliesModelOverrides(t *testing.T) {
	reg, err := NewRegistry(config.Settings{
		Models: config.ModelOverrides{QA: "gpt-4o-mini", BA: "gemini-2.0-pro"},
	})
	require.NoError(t, err)

	qa, err := reg.Lookup(QA)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", qa.Model)

	ba, err := reg.Lookup(BA)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-pro", ba.Model)

	coder, err := reg.Lookup(Coder)
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-5-20250514", coder.Model)
}

func TestLookup_UnknownRole(t *testing.T) {
	reg, err := NewRegistry(config.Settings{})
	require.NoError(t, err)

	_, err = reg.Lookup(Role("intern"))
	require.ErrorIs(t, err, ErrUnknownRole)
}
