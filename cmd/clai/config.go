package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claidev/clai/internal/config"
	"github.com/claidev/clai/internal/render"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "config",
		Short:        "Show configuration and API key status",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			status := func(key string) string {
				if key == "" {
					return "missing"
				}
				return "set"
			}

			r := render.New()
			fmt.Fprint(os.Stdout, r.Table([]string{"PROVIDER", "API KEY"}, [][]string{
				{"Anthropic", status(settings.AnthropicAPIKey)},
				{"OpenAI", status(settings.OpenAIAPIKey)},
				{"Google", status(settings.GoogleAPIKey)},
			}))
			fmt.Fprintf(os.Stdout, "\nWorkspace: %s\nHistory DB: %s\n", settings.WorkspaceRoot, settings.HistoryDB)
			return nil
		},
	}
}
