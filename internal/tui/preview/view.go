package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/wireframe/internal/components"
)

// View implements tea.Model.
func (m Model) View() string {
	theme := components.ThemeFor(m.mode)

	var b strings.Builder
	b.WriteString(Render(m.data, m.mode, m.width))
	b.WriteString("\n\n")

	status := lipgloss.NewStyle().Foreground(theme.Muted)
	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + status.Render(" generating..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Negative).Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
