package orchestrator

import "github.com/claidev/clai/internal/team"

// builtinWorkflows returns the standard team workflows.
func builtinWorkflows() []Workflow {
	return []Workflow{
		{
			Name:        "feature",
			Description: "Feature development: ba -> senior_dev -> coder -> qa",
			Steps: []Step{
				{
					Role:        team.BA,
					Instruction: "Analyze this feature request and create user stories with acceptance criteria:\n\n{requirement}",
				},
				{
					Role:        team.SeniorDev,
					Instruction: "Based on the requirements below, design the architecture and create a technical plan for implementation.",
					DependsOn:   []string{"step_0_ba"},
				},
				{
					Role:        team.Coder,
					Instruction: "Implement the feature based on the architecture and requirements provided.",
					DependsOn:   []string{"step_0_ba", "step_1_senior_dev"},
				},
				{
					Role:        team.QA,
					Instruction: "Review the implementation for bugs, edge cases, and suggest test cases.",
					DependsOn:   []string{"step_2_coder"},
				},
			},
		},
		{
			Name:        "review",
			Description: "Code review: reviewer -> senior_dev",
			Steps: []Step{
				{
					Role:        team.Reviewer,
					Instruction: "Review this code for issues, bugs, and improvements:\n\n{code}",
				},
				{
					Role:        team.SeniorDev,
					Instruction: "Based on the review feedback, suggest how to refactor and improve this code.",
					DependsOn:   []string{"step_0_reviewer"},
				},
			},
		},
		{
			Name:        "bugfix",
			Description: "Bug fix: qa -> senior_dev -> coder",
			Steps: []Step{
				{
					Role:        team.QA,
					Instruction: "Analyze this bug report and identify the root cause:\n\n{bug_description}\n\nCode:\n{code}",
				},
				{
					Role:        team.SeniorDev,
					Instruction: "Based on the QA analysis, plan the fix approach.",
					DependsOn:   []string{"step_0_qa"},
				},
				{
					Role:        team.Coder,
					Instruction: "Implement the bug fix based on the analysis and plan.",
					DependsOn:   []string{"step_0_qa", "step_1_senior_dev"},
				},
			},
		},
		{
			Name:        "architecture",
			Description: "Architecture review: ba -> senior_dev -> qa",
			Steps: []Step{
				{
					Role:        team.BA,
					Instruction: "List the business requirements and constraints for:\n\n{project_description}",
				},
				{
					Role:        team.SeniorDev,
					Instruction: "Design a comprehensive architecture considering the business requirements.",
					DependsOn:   []string{"step_0_ba"},
				},
				{
					Role:        team.QA,
					Instruction: "Review the architecture for potential issues, scalability concerns, and security gaps.",
					DependsOn:   []string{"step_1_senior_dev"},
				},
			},
		},
	}
}
