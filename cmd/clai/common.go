package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/claidev/clai/internal/agent"
	"github.com/claidev/clai/internal/config"
	"github.com/claidev/clai/internal/history"
	"github.com/claidev/clai/internal/orchestrator"
	"github.com/claidev/clai/internal/render"
	"github.com/claidev/clai/internal/team"
	"github.com/claidev/clai/internal/workspace"
)

// app bundles the wired components shared by every subcommand.
type app struct {
	settings config.Settings
	registry *team.Registry
	orch     *orchestrator.Orchestrator
	ws       *workspace.Workspace
	store    *history.Store
	renderer *render.Renderer
}

// buildApp loads configuration and wires the component graph. History
// persistence is best-effort: an unopenable database degrades to a nil
// store with a warning.
func buildApp() (*app, func(), error) {
	settings, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	registry, err := team.NewRegistry(settings)
	if err != nil {
		return nil, nil, fmt.Errorf("build team registry: %w", err)
	}

	ws, err := workspace.New(settings.WorkspaceRoot)
	if err != nil {
		return nil, nil, fmt.Errorf("open workspace: %w", err)
	}

	var store *history.Store
	if db, err := history.Open(settings.HistoryDB); err != nil {
		log.Warn().Err(err).Str("path", settings.HistoryDB).Msg("history db unavailable, not recording")
	} else {
		store = history.NewStore(db)
	}

	factory := agent.NewFactory(registry, agent.DefaultProviderFunc(settings))
	a := &app{
		settings: settings,
		registry: registry,
		orch:     orchestrator.New(factory),
		ws:       ws,
		store:    store,
		renderer: render.New(),
	}
	cleanup := func() { _ = a.store.Close() }
	return a, cleanup, nil
}
