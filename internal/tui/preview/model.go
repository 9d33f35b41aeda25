package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/wireframe/internal/components"
	"github.com/alexisbeaulieu97/wireframe/internal/fakedata"
	"github.com/alexisbeaulieu97/wireframe/internal/logger"
)

// Model is the interactive preview.
type Model struct {
	faker *fakedata.Faker
	rows  int
	log   *logger.Logger

	data    Data
	mode    components.Mode
	loading bool
	err     error
	shuffle int

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	width  int
	height int
}

// NewModel creates a preview showing data. Reshuffles draw rows records
// from f.
func NewModel(f *fakedata.Faker, data Data, rows int, log *logger.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		faker:   f,
		rows:    rows,
		log:     log,
		data:    data,
		mode:    components.ModeLight,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: s,
		width:   100,
		height:  40,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current theme mode.
func (m Model) Mode() components.Mode {
	return m.mode
}

// Data returns the data on screen.
func (m Model) Data() Data {
	return m.data
}
