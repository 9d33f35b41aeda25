package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/wireframe/internal/fakedata"
)

var navGlyphs = map[string]string{
	"home":     "⌂",
	"folder":   "▤",
	"users":    "☺",
	"calendar": "▦",
	"chart":    "▥",
	"settings": "⚙",
}

// NavBar renders navigation entries as a row of text-action buttons with
// the active entry promoted to a solid button.
type NavBar struct {
	items  []fakedata.NavItem
	active string
	theme  Mode
}

// NewNavBar creates a nav bar for the given entries.
func NewNavBar(items []fakedata.NavItem) *NavBar {
	return &NavBar{items: items, theme: ModeLight}
}

// WithActive marks the entry whose Href matches.
func (n *NavBar) WithActive(href string) *NavBar {
	n.active = href
	return n
}

// WithTheme sets light or dark rendering.
func (n *NavBar) WithTheme(mode Mode) *NavBar {
	n.theme = mode
	return n
}

// Buttons returns the buttons the bar renders, in menu order.
func (n *NavBar) Buttons() []*Button {
	buttons := make([]*Button, 0, len(n.items))
	for _, item := range n.items {
		props := ButtonProps{
			Type:  ButtonTypeTextAction,
			Size:  ButtonSizeSmall,
			Color: ButtonColorSecondary,
			Theme: n.theme,
		}
		if item.Href == n.active {
			props.Type = ButtonTypeDefault
			props.Color = ButtonColorPrimary
			props.Class = "px-2"
		}
		buttons = append(buttons, NewButton(item.Label, props).WithIcon(navGlyphs[item.Icon]))
	}
	return buttons
}

// View renders the bar.
func (n *NavBar) View() string {
	if len(n.items) == 0 {
		return ""
	}
	row := NewButtonGroup(n.Buttons()...).WithSpacing(2).View()
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ThemeFor(n.theme).Border).
		Render(row)
}
