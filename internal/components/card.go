package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatCard shows one headline metric with an optional change indicator.
type StatCard struct {
	title  string
	value  string
	change string
	icon   string
	width  int
	theme  Theme
}

// NewStatCard creates a card for the given metric.
func NewStatCard(title, value string) *StatCard {
	return &StatCard{title: title, value: value, width: 22, theme: LightTheme()}
}

// WithChange sets the change text. A leading "-" renders it as a decrease.
func (c *StatCard) WithChange(change string) *StatCard {
	c.change = change
	return c
}

// WithIcon sets the glyph shown beside the title.
func (c *StatCard) WithIcon(icon string) *StatCard {
	c.icon = icon
	return c
}

// WithWidth sets the outer width in cells.
func (c *StatCard) WithWidth(width int) *StatCard {
	if width > 0 {
		c.width = width
	}
	return c
}

// WithTheme sets the surface colours.
func (c *StatCard) WithTheme(theme Theme) *StatCard {
	c.theme = theme
	return c
}

// View renders the card.
func (c *StatCard) View() string {
	muted := lipgloss.NewStyle().Foreground(c.theme.Muted)
	value := lipgloss.NewStyle().Bold(true).Foreground(c.theme.OnSurface)

	title := c.title
	if c.icon != "" {
		title = c.icon + " " + title
	}
	lines := []string{muted.Render(title), value.Render(c.value)}
	if c.change != "" {
		tone := c.theme.Positive
		if strings.HasPrefix(c.change, "-") {
			tone = c.theme.Negative
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(tone).Render(c.change))
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.theme.Border).
		Padding(0, 1).
		Width(max(c.width-2, 1))
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
