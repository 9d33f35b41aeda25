package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/wireframe/internal/fakedata"
)

// DataTable renders rows of generated records.
type DataTable struct {
	headers []string
	rows    [][]string
	theme   Theme
	width   int
}

// NewDataTable creates a table with the given column headers.
func NewDataTable(headers ...string) *DataTable {
	return &DataTable{headers: headers, theme: LightTheme()}
}

// ItemTable builds the standard records table used by the preview. Status
// and priority cells are drawn as badges.
func ItemTable(items []fakedata.Item, mode Mode) *DataTable {
	t := NewDataTable("#", "Title", "Owner", "Status", "Priority", "Date", "Amount").WithTheme(ThemeFor(mode))
	for _, it := range items {
		t.AddRow(
			strconv.Itoa(it.ID),
			it.Title,
			it.Owner,
			NewBadge(it.Status).WithTheme(mode).View(),
			NewBadge(it.Priority).WithTheme(mode).View(),
			it.Date,
			it.Amount,
		)
	}
	return t
}

// AddRow appends a row. Missing cells render empty.
func (t *DataTable) AddRow(cells ...string) *DataTable {
	t.rows = append(t.rows, cells)
	return t
}

// WithTheme sets the surface colours.
func (t *DataTable) WithTheme(theme Theme) *DataTable {
	t.theme = theme
	return t
}

// WithWidth constrains the table width. Zero lets it size to content.
func (t *DataTable) WithWidth(width int) *DataTable {
	t.width = width
	return t
}

// Len returns the number of data rows.
func (t *DataTable) Len() int {
	return len(t.rows)
}

// View renders the table.
func (t *DataTable) View() string {
	header := lipgloss.NewStyle().Bold(true).Foreground(t.theme.OnSurface).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(t.theme.OnSurface).Padding(0, 1)
	muted := cell.Foreground(t.theme.Muted)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.theme.Border)).
		Headers(t.headers...).
		Rows(t.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return muted
			default:
				return cell
			}
		})
	if t.width > 0 {
		tbl = tbl.Width(t.width)
	}
	return tbl.Render()
}
