// Package render formats agent replies and tables for the terminal.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/claidev/clai/internal/llm"
	"github.com/claidev/clai/internal/team"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	footerStyle = lipgloss.NewStyle().
			Faint(true)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	cellStyle = lipgloss.NewStyle().PaddingRight(2)
)

// Renderer writes styled output, falling back to plain text when stdout
// is not a terminal or glamour fails.
type Renderer struct {
	markdown *glamour.TermRenderer
	tty      bool
}

// New creates a renderer. Styling is disabled when stdout is not a TTY.
func New() *Renderer {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	r := &Renderer{tty: tty}
	if tty {
		md, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			r.markdown = md
		}
	}
	return r
}

// Markdown renders markdown text for the terminal, returning the input
// unchanged when styling is unavailable.
func (r *Renderer) Markdown(text string) string {
	if r.markdown == nil {
		return text
	}
	out, err := r.markdown.Render(text)
	if err != nil {
		return text
	}
	return out
}

// Reply formats a single agent response: role header, rendered body,
// model and token footer.
func (r *Renderer) Reply(role team.Role, resp *llm.ChatResponse) string {
	var b strings.Builder
	b.WriteString(r.Header(fmt.Sprintf("@%s", role)))
	b.WriteString("\n")
	b.WriteString(r.Markdown(resp.Content))
	b.WriteString("\n")
	footer := fmt.Sprintf("%s · %d tokens", resp.Model, resp.Usage.TotalTokens)
	if r.tty {
		footer = footerStyle.Render(footer)
	}
	b.WriteString(footer)
	b.WriteString("\n")
	return b.String()
}

// Header formats a section heading.
func (r *Renderer) Header(text string) string {
	if !r.tty {
		return text
	}
	return headerStyle.Render(text)
}

// Error formats an error message.
func (r *Renderer) Error(err error) string {
	msg := fmt.Sprintf("error: %v", err)
	if !r.tty {
		return msg
	}
	return errorStyle.Render(msg)
}

// Table renders rows as aligned columns with a styled header row.
func (r *Renderer) Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(r.renderRow(headers, widths, true))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(r.renderRow(row, widths, false))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderRow(cells []string, widths []int, header bool) string {
	parts := make([]string, 0, len(cells))
	for i, cell := range cells {
		w := len(cell)
		if i < len(widths) {
			w = widths[i]
		}
		padded := cell + strings.Repeat(" ", w-len(cell))
		if r.tty {
			if header {
				padded = headerStyle.Render(padded)
			}
			padded = cellStyle.Render(padded)
		} else {
			padded += "  "
		}
		parts = append(parts, padded)
	}
	if r.tty {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return strings.TrimRight(strings.Join(parts, ""), " ")
}
