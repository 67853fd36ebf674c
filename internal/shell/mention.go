package shell

import (
	"strings"

	"github.com/claidev/clai/internal/team"
)

// mentionAliases maps @mention tokens to roles. Several aliases exist
// per role so the natural name works regardless of phrasing.
var mentionAliases = map[string]team.Role{
	// senior developer: architecture, complex problems
	"@senior":    team.SeniorDev,
	"@seniordev": team.SeniorDev,
	"@architect": team.SeniorDev,
	"@lead":      team.SeniorDev,
	"@tech":      team.SeniorDev,

	// primary coder: fast implementation
	"@dev":       team.Coder,
	"@coder":     team.Coder,
	"@dev1":      team.Coder,
	"@developer": team.Coder,
	"@code":      team.Coder,

	// secondary coder: large context
	"@dev2":   team.Coder2,
	"@coder2": team.Coder2,
	"@gemini": team.Coder2,

	// qa engineer: testing, bugs
	"@qa":      team.QA,
	"@test":    team.QA,
	"@tester":  team.QA,
	"@quality": team.QA,
	"@bug":     team.QA,

	// business analyst: requirements, specs
	"@ba":      team.BA,
	"@analyst": team.BA,
	"@specs":   team.BA,
	"@reqs":    team.BA,

	// code reviewer: quick reviews
	"@reviewer": team.Reviewer,
	"@review":   team.Reviewer,
	"@cr":       team.Reviewer,
}

// teamMentions fan a prompt out to the whole team.
var teamMentions = map[string]bool{
	"@team":     true,
	"@all":      true,
	"@devteam":  true,
	"@everyone": true,
}

// parsedMention is the result of parsing a mention line.
type parsedMention struct {
	Role     team.Role
	HasRole  bool
	Team     bool
	Prompt   string
	SaveTo   string
	LoadPath string
	Unknown  []string // @tokens that matched nothing
}

// parseMention parses one input line: output redirect, input redirect,
// then mention tokens. Redirects are split off exactly once each before
// mention extraction. Known mention tokens are removed from the prompt;
// the first role mention in the line wins, and any team mention routes
// to the whole team.
func parseMention(input string) parsedMention {
	var p parsedMention

	if idx := strings.Index(input, ">"); idx >= 0 {
		p.SaveTo = strings.TrimSpace(input[idx+1:])
		input = strings.TrimSpace(input[:idx])
	}
	if idx := strings.Index(input, "<"); idx >= 0 {
		p.LoadPath = strings.TrimSpace(input[idx+1:])
		input = strings.TrimSpace(input[:idx])
	}

	var kept []string
	for _, tok := range strings.Fields(input) {
		if !strings.HasPrefix(tok, "@") {
			kept = append(kept, tok)
			continue
		}
		lower := strings.ToLower(tok)
		if teamMentions[lower] {
			p.Team = true
			continue
		}
		if role, ok := mentionAliases[lower]; ok {
			if !p.HasRole {
				p.Role = role
				p.HasRole = true
			}
			continue
		}
		p.Unknown = append(p.Unknown, tok)
		kept = append(kept, tok)
	}

	p.Prompt = strings.Join(kept, " ")
	return p
}
