package agent

import (
	"context"
	"fmt"

	"github.com/claidev/clai/internal/config"
	"github.com/claidev/clai/internal/llm"
	"github.com/claidev/clai/internal/llm/anthropic"
	"github.com/claidev/clai/internal/llm/gemini"
	"github.com/claidev/clai/internal/llm/openai"
	"github.com/claidev/clai/internal/team"
)

// DefaultProviderFunc returns a ProviderFunc that builds real vendor
// clients from the API keys in settings.
func DefaultProviderFunc(settings config.Settings) ProviderFunc {
	return func(ctx context.Context, cfg team.Config) (llm.Provider, error) {
		key := settings.KeyForProvider(cfg.Provider)
		switch cfg.Provider {
		case team.ProviderAnthropic:
			return anthropic.New(key)
		case team.ProviderOpenAI:
			return openai.New(key)
		case team.ProviderGoogle:
			return gemini.New(ctx, key)
		default:
			return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
		}
	}
}
