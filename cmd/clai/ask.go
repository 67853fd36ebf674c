package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claidev/clai/internal/team"
)

func askCmd() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:          "ask <role> [prompt]...",
		Short:        "Ask one team member a single question",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := team.Parse(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}

			prompt := strings.Join(args[1:], " ")
			if filePath != "" {
				data, err := os.ReadFile(filePath)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				prompt = fmt.Sprintf("%s\n\n---\nFile: %s\n```\n%s\n```\n", prompt, filePath, string(data))
			}
			if strings.TrimSpace(prompt) == "" {
				return errors.New("nothing to ask: give a prompt or -f file")
			}

			a, cleanup, err := buildApp()
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.orch.Ask(cmd.Context(), role, prompt, false)
			if err != nil {
				return err
			}
			fmt.Fprint(os.Stdout, a.renderer.Reply(role, resp))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "attach a file as context")
	return cmd
}
