// Package orchestrator coordinates multi-agent workflows: fixed ordered
// step lists where each step's prompt carries the outputs of the steps
// it depends on.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/claidev/clai/internal/agent"
	"github.com/claidev/clai/internal/llm"
	"github.com/claidev/clai/internal/team"
)

// Status of a workflow run.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Step is a single workflow step. Instruction may contain {key}
// placeholders filled from the run's initial context; DependsOn lists
// the names of earlier steps whose outputs are appended to the prompt.
type Step struct {
	Role        team.Role
	Instruction string
	DependsOn   []string
}

// Workflow is a named ordered list of steps.
type Workflow struct {
	Name        string
	Description string
	Steps       []Step
}

// StepOutput is one completed step of a run. Prompt is the full text
// sent to the agent, placeholders resolved and dependency outputs
// appended.
type StepOutput struct {
	Name    string
	Role    team.Role
	Prompt  string
	Content string
	Model   string
	Usage   llm.Usage
}

// Result of a workflow run. Outputs hold completed steps in execution
// order; on failure they hold the steps that finished before the error.
type Result struct {
	RunID          string
	Workflow       string
	Status         Status
	StepsCompleted int
	Outputs        []StepOutput
	Errors         []string
	Duration       time.Duration
}

// FinalOutput returns the last completed step's text, or "" when no
// step completed.
func (r Result) FinalOutput() string {
	if len(r.Outputs) == 0 {
		return ""
	}
	return r.Outputs[len(r.Outputs)-1].Content
}

// Orchestrator routes prompts to agents and runs registered workflows.
// Steps execute strictly sequentially, never concurrently.
type Orchestrator struct {
	factory   *agent.Factory
	workflows map[string]Workflow
	order     []string
}

// New creates an orchestrator over the given factory with the built-in
// workflows registered.
func New(factory *agent.Factory) *Orchestrator {
	o := &Orchestrator{
		factory:   factory,
		workflows: make(map[string]Workflow),
	}
	for _, wf := range builtinWorkflows() {
		o.Register(wf)
	}
	return o
}

// Register adds or replaces a workflow.
func (o *Orchestrator) Register(wf Workflow) {
	if _, ok := o.workflows[wf.Name]; !ok {
		o.order = append(o.order, wf.Name)
	}
	o.workflows[wf.Name] = wf
}

// Workflows returns the registered workflows in registration order.
func (o *Orchestrator) Workflows() []Workflow {
	out := make([]Workflow, 0, len(o.order))
	for _, name := range o.order {
		out = append(out, o.workflows[name])
	}
	return out
}

// Lookup returns a registered workflow by name.
func (o *Orchestrator) Lookup(name string) (Workflow, bool) {
	wf, ok := o.workflows[name]
	return wf, ok
}

// Ask routes a single prompt to one role's agent.
func (o *Orchestrator) Ask(ctx context.Context, role team.Role, prompt string, includeHistory bool) (*llm.ChatResponse, error) {
	a, err := o.factory.Get(ctx, role)
	if err != nil {
		return nil, err
	}
	return a.Send(ctx, prompt, includeHistory)
}

// Consultation is one role's answer from ConsultTeam.
type Consultation struct {
	Role     team.Role
	Response *llm.ChatResponse
	Err      error
}

// ConsultTeam asks several roles the same prompt, one after another.
// A failing role is recorded and the loop continues with the rest.
func (o *Orchestrator) ConsultTeam(ctx context.Context, prompt string, roles []team.Role) []Consultation {
	if len(roles) == 0 {
		roles = team.Roles()
	}
	out := make([]Consultation, 0, len(roles))
	for _, role := range roles {
		resp, err := o.Ask(ctx, role, prompt, false)
		out = append(out, Consultation{Role: role, Response: resp, Err: err})
	}
	return out
}

// RunWorkflow executes a registered workflow sequentially. Each step's
// prompt is its instruction with {key} placeholders replaced from
// context, followed by the outputs of the steps it depends on. The run
// stops at the first provider error, keeping the outputs collected so
// far. The returned error is non-nil exactly when the result status is
// failed.
func (o *Orchestrator) RunWorkflow(ctx context.Context, name string, vars map[string]string) (Result, error) {
	wf, ok := o.workflows[name]
	if !ok {
		err := fmt.Errorf("unknown workflow: %s", name)
		return Result{
			RunID:    uuid.NewString(),
			Workflow: name,
			Status:   StatusFailed,
			Errors:   []string{err.Error()},
		}, err
	}

	result := Result{
		RunID:    uuid.NewString(),
		Workflow: name,
		Status:   StatusCompleted,
	}
	byName := make(map[string]string, len(wf.Steps))
	start := time.Now()

	log.Debug().Str("workflow", name).Int("steps", len(wf.Steps)).Str("run_id", result.RunID).Msg("starting workflow")

	for i, step := range wf.Steps {
		stepName := fmt.Sprintf("step_%d_%s", i, step.Role)
		prompt := buildPrompt(step, vars, byName)

		log.Debug().Str("workflow", name).Str("step", stepName).Msg("running step")

		resp, err := o.Ask(ctx, step.Role, prompt, false)
		if err != nil {
			result.Status = StatusFailed
			result.StepsCompleted = i
			result.Errors = append(result.Errors, fmt.Sprintf("step %s failed: %v", stepName, err))
			result.Duration = time.Since(start)
			return result, fmt.Errorf("step %s failed: %w", stepName, err)
		}

		byName[stepName] = resp.Content
		result.Outputs = append(result.Outputs, StepOutput{
			Name:    stepName,
			Role:    step.Role,
			Prompt:  prompt,
			Content: resp.Content,
			Model:   resp.Model,
			Usage:   resp.Usage,
		})
	}

	result.StepsCompleted = len(wf.Steps)
	result.Duration = time.Since(start)

	log.Debug().Str("workflow", name).Dur("elapsed", result.Duration).Msg("workflow complete")
	return result, nil
}

// Active returns the agents constructed so far, in role order.
func (o *Orchestrator) Active() []*agent.Agent {
	return o.factory.Active()
}

// ClearContext drops conversation history for one role, or for every
// constructed agent when role is nil.
func (o *Orchestrator) ClearContext(ctx context.Context, role *team.Role) {
	if role == nil {
		o.factory.ClearHistories()
		return
	}
	for _, a := range o.factory.Active() {
		if a.Config().Role == *role {
			a.ClearHistory()
		}
	}
}

func buildPrompt(step Step, vars, outputs map[string]string) string {
	prompt := step.Instruction
	for key, value := range vars {
		prompt = strings.ReplaceAll(prompt, "{"+key+"}", value)
	}
	if len(step.DependsOn) > 0 {
		var b strings.Builder
		b.WriteString(prompt)
		b.WriteString("\n\n---\nPrevious outputs:\n")
		for _, dep := range step.DependsOn {
			if out, ok := outputs[dep]; ok {
				fmt.Fprintf(&b, "\n[%s]:\n%s\n", dep, out)
			}
		}
		prompt = b.String()
	}
	return prompt
}
