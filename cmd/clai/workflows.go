package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func workflowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "workflows",
		Short:        "List the available workflows",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := buildApp()
			if err != nil {
				return err
			}
			defer cleanup()

			rows := make([][]string, 0)
			for _, wf := range a.orch.Workflows() {
				rows = append(rows, []string{wf.Name, strconv.Itoa(len(wf.Steps)), wf.Description})
			}
			fmt.Fprint(os.Stdout, a.renderer.Table([]string{"NAME", "STEPS", "DESCRIPTION"}, rows))
			return nil
		},
	}
}
