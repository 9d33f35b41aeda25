package preview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/wireframe/internal/components"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case DataMsg:
		m.data = msg.Data
		m.loading = false
		m.err = nil
		m.shuffle++
		m.log.WithFields(map[string]any{"rows": len(msg.Data.Items), "shuffle": m.shuffle}).Debug("preview data regenerated")
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		m.log.Error(msg.Err, "preview data generation failed")
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Theme):
		if m.mode == components.ModeDark {
			m.mode = components.ModeLight
		} else {
			m.mode = components.ModeDark
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Reshuffle):
		if m.loading || m.faker == nil {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, generateCmd(m.faker, m.rows))
	}
	return m, nil
}
