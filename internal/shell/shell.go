// Package shell implements the interactive CLAI session: an input loop
// that routes @mentions to agents, runs workflows, and manages the
// project workspace.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/claidev/clai/internal/config"
	"github.com/claidev/clai/internal/history"
	"github.com/claidev/clai/internal/llm"
	"github.com/claidev/clai/internal/orchestrator"
	"github.com/claidev/clai/internal/render"
	"github.com/claidev/clai/internal/team"
	"github.com/claidev/clai/internal/workspace"
)

// commands recognized at the prompt. Anything else is treated as a
// mention line (or, in chat mode, a message to the current role).
var commands = map[string]bool{
	"help": true, "team": true, "workflows": true, "workflow": true,
	"config": true, "clear": true, "history": true, "save": true,
	"ask": true, "chat": true, "switch": true, "exit": true, "quit": true,
	"workspace": true, "projects": true, "newproject": true,
	"files": true, "tree": true, "readfile": true,
}

// Shell is one interactive session.
type Shell struct {
	orch     *orchestrator.Orchestrator
	registry *team.Registry
	settings config.Settings
	ws       *workspace.Workspace
	store    *history.Store
	renderer *render.Renderer

	scanner *bufio.Scanner
	out     io.Writer

	currentRole  *team.Role
	lastResponse string
	running      bool
}

// Options configures a Shell.
type Options struct {
	Orchestrator *orchestrator.Orchestrator
	Registry     *team.Registry
	Settings     config.Settings
	Workspace    *workspace.Workspace
	Store        *history.Store
	Renderer     *render.Renderer
	In           io.Reader
	Out          io.Writer
}

// New creates a shell session.
func New(opts Options) *Shell {
	if opts.Renderer == nil {
		opts.Renderer = render.New()
	}
	scanner := bufio.NewScanner(opts.In)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Shell{
		orch:     opts.Orchestrator,
		registry: opts.Registry,
		settings: opts.Settings,
		ws:       opts.Workspace,
		store:    opts.Store,
		renderer: opts.Renderer,
		scanner:  scanner,
		out:      opts.Out,
	}
}

// Run starts the input loop and blocks until exit or EOF.
func (s *Shell) Run(ctx context.Context) error {
	s.running = true
	s.printBanner()
	s.printHelp()

	for s.running {
		fmt.Fprint(s.out, s.promptText())
		if !s.scanner.Scan() {
			fmt.Fprintln(s.out, "\nGoodbye!")
			return s.scanner.Err()
		}
		s.processInput(ctx, s.scanner.Text())
	}
	return nil
}

func (s *Shell) promptText() string {
	if s.currentRole != nil {
		return fmt.Sprintf("clai (%s)> ", *s.currentRole)
	}
	return "clai> "
}

// processInput handles one line. Errors are printed; they never abort
// the loop.
func (s *Shell) processInput(ctx context.Context, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	if err := s.store.RecordInput(ctx, line); err != nil {
		log.Warn().Err(err).Msg("history: record input")
	}

	parts := strings.Fields(line)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	// chat mode: bare lines go to the current role with history
	if s.currentRole != nil && !commands[cmd] {
		s.queryAgent(ctx, *s.currentRole, line, "", true)
		return
	}

	switch cmd {
	case "exit", "quit":
		s.running = false
		fmt.Fprintln(s.out, "Goodbye!")
	case "help":
		s.printHelp()
	case "team":
		s.printTeam()
	case "workflows":
		s.printWorkflows()
	case "workflow":
		s.handleWorkflow(ctx, args)
	case "config":
		s.printConfig()
	case "clear":
		s.handleClear(ctx)
	case "ask":
		s.handleAsk(ctx, args)
	case "switch":
		if len(args) == 0 {
			s.currentRole = nil
			fmt.Fprintln(s.out, "Exited chat mode")
			return
		}
		s.handleSwitch(args)
	case "chat":
		s.handleSwitch(args)
	case "history":
		s.printHistory(ctx, args)
	case "save":
		s.handleSave(args)
	case "workspace":
		fmt.Fprintf(s.out, "Workspace: %s\n", s.ws.Root())
	case "projects":
		s.handleProjects()
	case "newproject":
		s.handleNewProject(args)
	case "files":
		s.handleFiles(args)
	case "tree":
		s.handleTree(args)
	case "readfile":
		s.handleReadFile(args)
	default:
		if strings.Contains(line, "@") {
			s.handleMention(ctx, line)
			return
		}
		fmt.Fprintln(s.out, "Tip: use @mentions like @senior, @dev, @qa, @ba, @team")
		fmt.Fprintln(s.out, "Example: @dev write a hello world in python")
	}
}

// handleMention routes a mention line to one agent or the whole team.
func (s *Shell) handleMention(ctx context.Context, line string) {
	p := parseMention(line)

	prompt := p.Prompt
	if p.LoadPath != "" {
		fileCtx, err := loadFileContext(p.LoadPath)
		if err != nil {
			fmt.Fprintln(s.out, s.renderer.Error(err))
			return
		}
		prompt += fileCtx
	}

	if strings.TrimSpace(prompt) == "" {
		fmt.Fprintln(s.out, "What would you like to ask?")
		return
	}

	switch {
	case p.Team:
		s.queryTeam(ctx, prompt)
	case p.HasRole:
		s.queryAgent(ctx, p.Role, prompt, p.SaveTo, false)
	case len(p.Unknown) > 0:
		fmt.Fprintf(s.out, "Unknown mention: %s\n", p.Unknown[0])
		fmt.Fprintln(s.out, "Try: @senior, @dev, @dev2, @qa, @ba, @reviewer, @team")
	default:
		fmt.Fprintln(s.out, "No @mention found. Try: @senior, @dev, @qa, @ba, @team")
	}
}

// queryAgent sends one prompt to one role and displays the reply.
func (s *Shell) queryAgent(ctx context.Context, role team.Role, prompt, saveTo string, includeHistory bool) {
	resp, err := s.orch.Ask(ctx, role, prompt, includeHistory)
	if err != nil {
		fmt.Fprintln(s.out, s.renderer.Error(err))
		return
	}

	s.lastResponse = resp.Content
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, s.renderer.Reply(role, resp))
	fmt.Fprintln(s.out)

	s.recordExchange(ctx, "", role, resp, prompt)

	if saveTo != "" {
		if err := saveResponse(resp.Content, saveTo); err != nil {
			fmt.Fprintln(s.out, s.renderer.Error(err))
			return
		}
		fmt.Fprintf(s.out, "Saved to %s\n", saveTo)
	}
}

// queryTeam asks the core roles the same question in turn.
func (s *Shell) queryTeam(ctx context.Context, prompt string) {
	fmt.Fprintln(s.out, "\nAsking the whole team...")

	roles := []team.Role{team.SeniorDev, team.Coder, team.QA, team.BA}
	for _, c := range s.orch.ConsultTeam(ctx, prompt, roles) {
		if c.Err != nil {
			fmt.Fprintf(s.out, "%s error: %v\n", c.Role, c.Err)
			continue
		}
		s.lastResponse = c.Response.Content
		fmt.Fprint(s.out, s.renderer.Reply(c.Role, c.Response))
		fmt.Fprintln(s.out)
		s.recordExchange(ctx, "", c.Role, c.Response, prompt)
	}
}

func (s *Shell) handleAsk(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: ask <role> <prompt>")
		return
	}
	role, err := team.Parse(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Unknown role: %s\n", args[0])
		fmt.Fprintf(s.out, "Available: %s\n", roleNames())
		return
	}
	s.queryAgent(ctx, role, strings.Join(args[1:], " "), "", false)
}

func (s *Shell) handleSwitch(args []string) {
	if len(args) == 0 {
		if s.currentRole != nil {
			fmt.Fprintf(s.out, "Chatting with: %s\n", *s.currentRole)
		} else {
			fmt.Fprintln(s.out, "Not in chat mode. Use: chat <role>")
		}
		return
	}
	role, err := team.Parse(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Unknown role: %s\n", args[0])
		return
	}
	s.currentRole = &role
	fmt.Fprintf(s.out, "Now chatting with %s. Type 'switch' to exit.\n", role)
}

func (s *Shell) handleSave(args []string) {
	if s.lastResponse == "" {
		fmt.Fprintln(s.out, "No response to save yet")
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: save <filename>")
		return
	}
	if err := saveResponse(s.lastResponse, args[0]); err != nil {
		fmt.Fprintln(s.out, s.renderer.Error(err))
		return
	}
	fmt.Fprintf(s.out, "Saved to %s\n", args[0])
}

func (s *Shell) handleClear(ctx context.Context) {
	s.orch.ClearContext(ctx, nil)
	fmt.Fprintln(s.out, "Conversation history cleared")
}

func (s *Shell) printHistory(ctx context.Context, args []string) {
	role := ""
	if len(args) > 0 {
		if r, err := team.Parse(args[0]); err == nil {
			role = string(r)
		}
	}

	exchanges, err := s.store.RecentExchanges(ctx, role, 10)
	if err != nil {
		log.Warn().Err(err).Msg("history: query exchanges")
	}
	if len(exchanges) > 0 {
		rows := make([][]string, 0, len(exchanges))
		for _, ex := range exchanges {
			rows = append(rows, []string{ex.CreatedAt, ex.Role, ex.Model, truncate(ex.Prompt, 48)})
		}
		fmt.Fprint(s.out, s.renderer.Table([]string{"WHEN", "ROLE", "MODEL", "PROMPT"}, rows))
	}

	any := false
	for _, a := range s.orch.Active() {
		if a.HistoryLen() > 0 {
			fmt.Fprintf(s.out, "%s: %d messages in memory\n", a.Config().Role, a.HistoryLen())
			any = true
		}
	}
	if !any && len(exchanges) == 0 {
		fmt.Fprintln(s.out, "No history yet")
	}
}

func (s *Shell) recordExchange(ctx context.Context, runID string, role team.Role, resp *llm.ChatResponse, prompt string) {
	err := s.store.RecordExchange(ctx, history.Exchange{
		RunID:       runID,
		Role:        string(role),
		Model:       resp.Model,
		Prompt:      prompt,
		Reply:       resp.Content,
		TotalTokens: resp.Usage.TotalTokens,
	})
	if err != nil {
		log.Warn().Err(err).Msg("history: record exchange")
	}
}

func roleNames() string {
	names := make([]string, 0)
	for _, r := range team.Roles() {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
