package preview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/wireframe/internal/fakedata"
)

// generateCmd builds new dashboard data off the update loop.
func generateCmd(f *fakedata.Faker, rows int) tea.Cmd {
	return func() tea.Msg {
		data, err := Generate(f, rows)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return DataMsg{Data: data}
	}
}
