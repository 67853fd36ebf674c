package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claidev/clai/internal/team"
)

func TestParseMention_AliasesRouteToRoles(t *testing.T) {
	cases := map[string]team.Role{
		"@senior":    team.SeniorDev,
		"@architect": team.SeniorDev,
		"@lead":      team.SeniorDev,
		"@dev":       team.Coder,
		"@developer": team.Coder,
		"@dev2":      team.Coder2,
		"@gemini":    team.Coder2,
		"@qa":        team.QA,
		"@tester":    team.QA,
		"@ba":        team.BA,
		"@reqs":      team.BA,
		"@reviewer":  team.Reviewer,
		"@cr":        team.Reviewer,
	}
	for mention, want := range cases {
		p := parseMention(mention + " do the thing")
		assert.True(t, p.HasRole, mention)
		assert.Equal(t, want, p.Role, mention)
		assert.Equal(t, "do the thing", p.Prompt, mention)
	}
}

func TestParseMention_CaseInsensitive(t *testing.T) {
	p := parseMention("@QA check this")
	assert.True(t, p.HasRole)
	assert.Equal(t, team.QA, p.Role)
	assert.Equal(t, "check this", p.Prompt)
}

func TestParseMention_FirstMentionWins(t *testing.T) {
	p := parseMention("@dev and @qa look at this")
	assert.Equal(t, team.Coder, p.Role)
	assert.Equal(t, "and look at this", p.Prompt, "all known mentions stripped")
}

func TestParseMention_EmbeddedMention(t *testing.T) {
	p := parseMention("please @senior design the schema")
	assert.True(t, p.HasRole)
	assert.Equal(t, team.SeniorDev, p.Role)
	assert.Equal(t, "please design the schema", p.Prompt)
}

func TestParseMention_TeamMentions(t *testing.T) {
	for _, m := range []string{"@team", "@all", "@devteam", "@everyone"} {
		p := parseMention(m + " thoughts?")
		assert.True(t, p.Team, m)
		assert.Equal(t, "thoughts?", p.Prompt, m)
	}
}

func TestParseMention_UnknownMention(t *testing.T) {
	p := parseMention("@plumber fix the sink")
	assert.False(t, p.HasRole)
	assert.False(t, p.Team)
	assert.Equal(t, []string{"@plumber"}, p.Unknown)
}

func TestParseMention_Redirects(t *testing.T) {
	p := parseMention("@dev write a parser > out.go")
	assert.Equal(t, team.Coder, p.Role)
	assert.Equal(t, "write a parser", p.Prompt)
	assert.Equal(t, "out.go", p.SaveTo)

	p = parseMention("@qa review this < main.go")
	assert.Equal(t, team.QA, p.Role)
	assert.Equal(t, "review this", p.Prompt)
	assert.Equal(t, "main.go", p.LoadPath)

	p = parseMention("@dev improve < old.go > new.go")
	assert.Equal(t, "improve", p.Prompt)
	assert.Equal(t, "old.go", p.LoadPath)
	assert.Equal(t, "new.go", p.SaveTo)
}
