package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Reshuffle key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reshuffle: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reshuffle")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reshuffle, k.Theme, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Reshuffle, k.Theme}, {k.Help, k.Quit}}
}
