package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claidev/clai/internal/config"
	"github.com/claidev/clai/internal/render"
	"github.com/claidev/clai/internal/team"
)

func teamCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "team",
		Short:        "Show the team roster",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			registry, err := team.NewRegistry(settings)
			if err != nil {
				return err
			}

			r := render.New()
			rows := make([][]string, 0)
			for _, role := range team.Roles() {
				cfg, err := registry.Lookup(role)
				if err != nil {
					continue
				}
				rows = append(rows, []string{string(cfg.Role), cfg.Name, cfg.Provider, cfg.Model, cfg.Description})
			}
			fmt.Fprint(os.Stdout, r.Table([]string{"ROLE", "NAME", "PROVIDER", "MODEL", "FOCUS"}, rows))
			return nil
		},
	}
}
