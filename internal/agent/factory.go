package agent

import (
	"context"
	"fmt"
	"sync"

	"github.com/claidev/clai/internal/llm"
	"github.com/claidev/clai/internal/team"
)

// ProviderFunc constructs a provider client for a role configuration.
// The factory uses it once per provider backend and shares the result.
type ProviderFunc func(ctx context.Context, cfg team.Config) (llm.Provider, error)

// Factory lazily builds and caches one agent per role. Agents keep
// per-role conversation state, so the same agent instance is returned
// for repeated requests of the same role.
type Factory struct {
	mu          sync.Mutex
	registry    *team.Registry
	newProvider ProviderFunc
	agents      map[team.Role]*Agent
	providers   map[string]llm.Provider
}

// NewFactory creates a factory over the given registry. newProvider is
// called to build provider clients on first use; tests pass a constructor
// returning mocks.
func NewFactory(registry *team.Registry, newProvider ProviderFunc) *Factory {
	return &Factory{
		registry:    registry,
		newProvider: newProvider,
		agents:      make(map[team.Role]*Agent),
		providers:   make(map[string]llm.Provider),
	}
}

// Get returns the agent for role, constructing it on first use.
func (f *Factory) Get(ctx context.Context, role team.Role) (*Agent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if a, ok := f.agents[role]; ok {
		return a, nil
	}

	cfg, err := f.registry.Lookup(role)
	if err != nil {
		return nil, err
	}

	provider, ok := f.providers[cfg.Provider]
	if !ok {
		provider, err = f.newProvider(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("create %s provider for role %s: %w", cfg.Provider, role, err)
		}
		f.providers[cfg.Provider] = provider
	}

	a := New(cfg, provider)
	f.agents[role] = a
	return a, nil
}

// Active returns the agents constructed so far, in registry role order.
func (f *Factory) Active() []*Agent {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*Agent
	for _, role := range team.Roles() {
		if a, ok := f.agents[role]; ok {
			out = append(out, a)
		}
	}
	return out
}

// ClearHistories drops the conversation history of every cached agent.
func (f *Factory) ClearHistories() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.agents {
		a.ClearHistory()
	}
}
