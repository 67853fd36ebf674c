package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/claidev/clai/internal/history"
	"github.com/claidev/clai/internal/team"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "chat <role>",
		Short:        "Chat with one team member, keeping conversation history",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := team.Parse(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}

			a, cleanup, err := buildApp()
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Printf("Chatting with %s. Type 'exit' or Ctrl-D to leave.\n", role)

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for {
				fmt.Printf("clai (%s)> ", role)
				if !scanner.Scan() {
					fmt.Println()
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}

				resp, err := a.orch.Ask(cmd.Context(), role, line, true)
				if err != nil {
					fmt.Println(a.renderer.Error(err))
					continue
				}
				fmt.Print(a.renderer.Reply(role, resp))
				if recErr := a.store.RecordExchange(cmd.Context(), history.Exchange{
					Role:        string(role),
					Model:       resp.Model,
					Prompt:      line,
					Reply:       resp.Content,
					TotalTokens: resp.Usage.TotalTokens,
				}); recErr != nil {
					log.Warn().Err(recErr).Msg("history: record exchange")
				}
			}
		},
	}
}
