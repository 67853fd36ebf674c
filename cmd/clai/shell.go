package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/claidev/clai/internal/shell"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "shell",
		Short:        "Start the interactive shell",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := buildApp()
			if err != nil {
				return err
			}
			defer cleanup()

			s := shell.New(shell.Options{
				Orchestrator: a.orch,
				Registry:     a.registry,
				Settings:     a.settings,
				Workspace:    a.ws,
				Store:        a.store,
				Renderer:     a.renderer,
				In:           os.Stdin,
				Out:          os.Stdout,
			})
			return s.Run(cmd.Context())
		},
	}
}
