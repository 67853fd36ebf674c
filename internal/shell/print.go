package shell

import (
	"fmt"
	"strconv"

	"github.com/claidev/clai/internal/team"
)

func (s *Shell) printBanner() {
	fmt.Fprintln(s.out, s.renderer.Header("CLAI — your AI dev team in the terminal"))
	fmt.Fprintln(s.out)
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, s.renderer.Header("Commands"))
	fmt.Fprint(s.out, `  @<role> <message>       ask one team member (@senior, @dev, @dev2, @qa, @ba, @reviewer)
  @team <message>         ask the whole team
  ... > file              save the reply to a file
  ... < file              include a file (or directory) as context
  ask <role> <prompt>     same as a mention, spelled out
  chat <role>             enter chat mode with one role; 'switch' exits
  workflow <name>         run a multi-step workflow
  workflows               list workflows
  team                    show the team roster
  config                  show API key status
  history [role]          show recent exchanges
  save <file>             save the last reply
  clear                   clear all conversation history
  workspace               show the workspace root
  projects                list projects
  newproject <name> [tpl] create a project (basic, python, node)
  files [path]            list files
  tree [path] [depth]     show a directory tree
  readfile <path>         print a file
  help                    this text
  exit                    leave
`)
}

func (s *Shell) printTeam() {
	rows := make([][]string, 0)
	for _, role := range team.Roles() {
		cfg, err := s.registry.Lookup(role)
		if err != nil {
			continue
		}
		rows = append(rows, []string{string(cfg.Role), cfg.Name, cfg.Provider, cfg.Model})
	}
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, s.renderer.Table([]string{"ROLE", "NAME", "PROVIDER", "MODEL"}, rows))
	fmt.Fprintln(s.out)
}

func (s *Shell) printWorkflows() {
	rows := make([][]string, 0)
	for _, wf := range s.orch.Workflows() {
		rows = append(rows, []string{wf.Name, strconv.Itoa(len(wf.Steps)), wf.Description})
	}
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, s.renderer.Table([]string{"NAME", "STEPS", "DESCRIPTION"}, rows))
	fmt.Fprintln(s.out)
}

func (s *Shell) printConfig() {
	keys := []struct {
		provider string
		set      bool
	}{
		{"Anthropic", s.settings.AnthropicAPIKey != ""},
		{"OpenAI", s.settings.OpenAIAPIKey != ""},
		{"Google", s.settings.GoogleAPIKey != ""},
	}

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		status := "missing"
		if k.set {
			status = "set"
		}
		rows = append(rows, []string{k.provider, status})
	}
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, s.renderer.Table([]string{"PROVIDER", "API KEY"}, rows))
	fmt.Fprintln(s.out)
}
