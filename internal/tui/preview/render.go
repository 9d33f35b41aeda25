package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/wireframe/internal/components"
)

const minRenderWidth = 60

// Render draws the dashboard for data at the given width.
func Render(data Data, mode components.Mode, width int) string {
	width = max(width, minRenderWidth)
	theme := components.ThemeFor(mode)

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render(data.Title)
	user := lipgloss.NewStyle().Foreground(theme.Muted).Render(data.User)
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", user)

	nav := ""
	if len(data.Nav) > 0 {
		nav = components.NewNavBar(data.Nav).WithActive(data.Nav[0].Href).WithTheme(mode).View()
	}

	cardWidth := max(width/max(len(data.Stats), 1)-1, 18)
	cards := make([]string, 0, len(data.Stats))
	for _, s := range data.Stats {
		cards = append(cards, components.NewStatCard(s.Title, s.Value).
			WithChange(s.Change).
			WithIcon(s.Icon).
			WithWidth(cardWidth).
			WithTheme(theme).
			View())
	}

	heading := lipgloss.NewStyle().Bold(true).Foreground(theme.OnSurface).Render(data.Heading)
	trend := lipgloss.NewStyle().Foreground(theme.Accent).Render(components.Sparkline(data.Series))
	bars := components.NewBarChart(data.Categories).WithWidth(max(width/3, 10)).WithTheme(theme).View()

	actions := components.NewButtonGroup(
		components.NewButton("New item", components.ButtonProps{Theme: mode}),
		components.NewButton("Export", components.ButtonProps{Type: components.ButtonTypeOutline, Color: components.ButtonColorSecondary, Theme: mode}),
		components.NewButton("Archive", components.ButtonProps{Type: components.ButtonTypeGhost, Color: components.ButtonColorNeutral, Theme: mode}),
		components.NewButton("Delete", components.ButtonProps{Type: components.ButtonTypeTextAction, Color: components.ButtonColorDanger, Theme: mode}),
	).WithSpacing(2).View()

	table := components.ItemTable(data.Items, mode).View()

	sections := []string{
		header,
		nav,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		heading + "  " + trend,
		bars,
		actions,
		table,
	}
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
