package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPanel lays out a titled block: the title, a divider, the body lines
// indented by two spaces and an optional footer line.
func renderPanel(title, body, footer string) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(body) != "" {
		for _, line := range strings.Split(body, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)

	parts := []string{titleStyle.Render(title), b.String()}
	if strings.TrimSpace(footer) != "" {
		parts = append(parts, "  "+helpStyle.Render(footer))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText shortens v to max runes, ending with "..." when cut.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
