package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claidev/clai/internal/history"
	"github.com/claidev/clai/internal/llm"
	"github.com/rs/zerolog/log"
)

func workflowCmd() *cobra.Command {
	var requirement string
	var codeFile string
	var bugDescription string
	var projectDescription string

	cmd := &cobra.Command{
		Use:          "workflow <name>",
		Short:        "Run a multi-agent workflow",
		Long:         "Run a named workflow: feature, review, bugfix, or architecture.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := buildApp()
			if err != nil {
				return err
			}
			defer cleanup()

			name := args[0]
			vars := map[string]string{}
			if requirement != "" {
				vars["requirement"] = requirement
			}
			if bugDescription != "" {
				vars["bug_description"] = bugDescription
			}
			if projectDescription != "" {
				vars["project_description"] = projectDescription
			}
			if codeFile != "" {
				code, err := os.ReadFile(codeFile)
				if err != nil {
					return fmt.Errorf("read code file: %w", err)
				}
				vars["code"] = string(code)
			}

			result, err := a.orch.RunWorkflow(cmd.Context(), name, vars)
			if recErr := a.store.RecordRun(cmd.Context(), history.Run{
				RunID:          result.RunID,
				Workflow:       result.Workflow,
				Status:         string(result.Status),
				StepsCompleted: result.StepsCompleted,
				Duration:       result.Duration,
			}); recErr != nil {
				log.Warn().Err(recErr).Msg("history: record run")
			}
			if err != nil {
				for _, e := range result.Errors {
					fmt.Fprintln(os.Stderr, e)
				}
				return err
			}

			fmt.Printf("Done in %.2fs\n\n", result.Duration.Seconds())
			for _, step := range result.Outputs {
				fmt.Print(a.renderer.Reply(step.Role, &llm.ChatResponse{
					Content: step.Content,
					Model:   step.Model,
					Usage:   step.Usage,
				}))
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&requirement, "requirement", "r", "", "feature requirement text")
	cmd.Flags().StringVarP(&codeFile, "code", "c", "", "path to the code file (review, bugfix)")
	cmd.Flags().StringVarP(&bugDescription, "bug", "b", "", "bug description (bugfix)")
	cmd.Flags().StringVarP(&projectDescription, "project", "p", "", "project description (architecture)")
	return cmd
}
