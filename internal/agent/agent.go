// Package agent binds team role configurations to live LLM providers.
package agent

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/claidev/clai/internal/llm"
	"github.com/claidev/clai/internal/team"
)

// Agent is a single team member: a role configuration bound to a
// provider client, with an in-memory conversation history.
type Agent struct {
	cfg      team.Config
	provider llm.Provider
	history  []llm.Message
}

// New creates an agent for the given role configuration.
func New(cfg team.Config, provider llm.Provider) *Agent {
	return &Agent{cfg: cfg, provider: provider}
}

// Config returns the role configuration this agent was built from.
func (a *Agent) Config() team.Config {
	return a.cfg
}

// Send submits a prompt to the agent's provider. When includeHistory is
// true the prior turns of this agent's conversation are sent as context.
// History is extended only after a successful response, so a failed call
// leaves the conversation unchanged.
func (a *Agent) Send(ctx context.Context, prompt string, includeHistory bool) (*llm.ChatResponse, error) {
	var msgs []llm.Message
	if includeHistory {
		msgs = append(msgs, a.history...)
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: prompt})

	req := llm.ChatRequest{
		Model:       a.cfg.Model,
		System:      a.cfg.SystemPrompt,
		Messages:    msgs,
		Temperature: a.cfg.Temperature,
		MaxTokens:   a.cfg.MaxTokens,
	}

	start := time.Now()
	resp, err := a.provider.Chat(ctx, req)
	if err != nil {
		log.Debug().
			Str("role", string(a.cfg.Role)).
			Str("model", a.cfg.Model).
			Err(err).
			Msg("agent call failed")
		return nil, err
	}

	log.Debug().
		Str("role", string(a.cfg.Role)).
		Str("model", a.cfg.Model).
		Int("input_tokens", resp.Usage.InputTokens).
		Int("output_tokens", resp.Usage.OutputTokens).
		Dur("elapsed", time.Since(start)).
		Msg("agent call complete")

	a.history = append(a.history,
		llm.Message{Role: llm.RoleUser, Content: prompt},
		llm.Message{Role: llm.RoleAssistant, Content: resp.Content},
	)
	return resp, nil
}

// ClearHistory drops the agent's conversation history.
func (a *Agent) ClearHistory() {
	a.history = nil
}

// HistoryLen reports the number of stored messages.
func (a *Agent) HistoryLen() int {
	return len(a.history)
}

// History returns a copy of the stored conversation.
func (a *Agent) History() []llm.Message {
	out := make([]llm.Message, len(a.history))
	copy(out, a.history)
	return out
}
