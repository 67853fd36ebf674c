package shell

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/claidev/clai/internal/history"
	"github.com/claidev/clai/internal/llm"
	"github.com/claidev/clai/internal/orchestrator"
)

// handleWorkflow gathers the workflow's inputs interactively and runs it.
func (s *Shell) handleWorkflow(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: workflow <name>")
		s.printWorkflows()
		return
	}

	name := args[0]
	if _, ok := s.orch.Lookup(name); !ok {
		fmt.Fprintf(s.out, "Unknown workflow: %s\n", name)
		return
	}

	vars, ok := s.gatherWorkflowInputs(name)
	if !ok {
		return
	}

	fmt.Fprintf(s.out, "\nRunning %s workflow...\n\n", name)

	result, err := s.orch.RunWorkflow(ctx, name, vars)
	if recErr := s.store.RecordRun(ctx, history.Run{
		RunID:          result.RunID,
		Workflow:       result.Workflow,
		Status:         string(result.Status),
		StepsCompleted: result.StepsCompleted,
		Duration:       result.Duration,
	}); recErr != nil {
		log.Warn().Err(recErr).Msg("history: record run")
	}

	if err != nil {
		fmt.Fprintln(s.out, "Workflow failed")
		for _, e := range result.Errors {
			fmt.Fprintf(s.out, "  %s\n", e)
		}
		return
	}

	fmt.Fprintf(s.out, "Done in %.2fs\n\n", result.Duration.Seconds())
	for _, step := range result.Outputs {
		fmt.Fprint(s.out, s.renderer.Reply(step.Role, stepResponse(step)))
		fmt.Fprintln(s.out)
		s.recordExchange(ctx, result.RunID, step.Role, stepResponse(step), step.Prompt)
	}
	s.lastResponse = result.FinalOutput()
}

// stepResponse adapts a completed step for display.
func stepResponse(step orchestrator.StepOutput) *llm.ChatResponse {
	return &llm.ChatResponse{
		Content: step.Content,
		Model:   step.Model,
		Usage:   step.Usage,
	}
}

// gatherWorkflowInputs prompts for the context each built-in workflow
// needs. Returns ok=false when a required file cannot be read.
func (s *Shell) gatherWorkflowInputs(name string) (map[string]string, bool) {
	vars := map[string]string{}
	switch name {
	case "feature":
		vars["requirement"] = s.promptLine("What feature? ")
	case "review":
		path := s.promptLine("File to review: ")
		code, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(s.out, "Can't read file: %v\n", err)
			return nil, false
		}
		vars["code"] = string(code)
	case "bugfix":
		vars["bug_description"] = s.promptLine("Describe the bug: ")
		path := s.promptLine("Code file: ")
		code, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(s.out, "Can't read file: %v\n", err)
			return nil, false
		}
		vars["code"] = string(code)
	case "architecture":
		vars["project_description"] = s.promptLine("Describe the project: ")
	}
	return vars, true
}

// promptLine reads one line of input with a label.
func (s *Shell) promptLine(label string) string {
	fmt.Fprint(s.out, label)
	if !s.scanner.Scan() {
		return ""
	}
	return s.scanner.Text()
}
