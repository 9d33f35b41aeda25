package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/wireframe/internal/fakedata"
)

func TestStatCardView(t *testing.T) {
	out := NewStatCard("Revenue", "$12,400.00").WithChange("+4.2%").WithIcon("📈").WithWidth(30).View()
	assert.Contains(t, out, "Revenue")
	assert.Contains(t, out, "$12,400.00")
	assert.Contains(t, out, "+4.2%")

	down := NewStatCard("Churn", "3%").WithChange("-1.0%").WithTheme(DarkTheme()).View()
	assert.Contains(t, down, "-1.0%")
}

func TestItemTable(t *testing.T) {
	items := []fakedata.Item{
		{ID: 1, Title: "Project Alpha", Owner: "Mary Smith", Status: "Active", Priority: "High", Date: "Mar 1, 2024", Amount: "$10.00"},
		{ID: 2, Title: "Release Notes", Owner: "John Lee", Status: "Draft", Priority: "Low", Date: "Mar 2, 2024", Amount: "$20.00"},
	}
	tbl := ItemTable(items, ModeLight)
	assert.Equal(t, 2, tbl.Len())

	out := tbl.View()
	for _, want := range []string{"Title", "Owner", "Project Alpha", "John Lee", "$20.00", "Active", "Low"} {
		assert.Contains(t, out, want)
	}
}

func TestNavBar(t *testing.T) {
	nav := []fakedata.NavItem{
		{Label: "Dashboard", Href: "/", Icon: "home"},
		{Label: "Reports", Href: "/reports", Icon: "chart"},
	}
	bar := NewNavBar(nav).WithActive("/reports")

	buttons := bar.Buttons()
	if assert.Len(t, buttons, 2) {
		assert.Equal(t, ButtonTypeTextAction, buttons[0].Props().Type)
		assert.Equal(t, ButtonTypeDefault, buttons[1].Props().Type)
	}

	out := bar.View()
	assert.Contains(t, out, "Dashboard")
	assert.Contains(t, out, "Reports")
	assert.Empty(t, NewNavBar(nil).View())
}

func TestBarChart(t *testing.T) {
	out := NewBarChart([]fakedata.CategoryValue{{Name: "Food", Value: 100}, {Name: "Toys", Value: 50}}).WithWidth(10).View()
	lines := strings.Split(out, "\n")
	if assert.Len(t, lines, 2) {
		assert.Equal(t, 10, strings.Count(lines[0], "█"))
		assert.Equal(t, 5, strings.Count(lines[1], "█"))
	}

	pie := PieBarChart([]fakedata.PieSlice{{Label: "A", Value: 60}, {Label: "B", Value: 40}}).View()
	assert.Contains(t, pie, "60")
	assert.Empty(t, NewBarChart(nil).View())
}

func TestSparkline(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	pts := []fakedata.SeriesPoint{{Date: day, Value: 10}, {Date: day, Value: 20}, {Date: day, Value: 30}}
	assert.Equal(t, "▁▄█", Sparkline(pts))
	assert.Equal(t, "▁", Sparkline(pts[:1]))
	assert.Empty(t, Sparkline(nil))
}

func TestBadge(t *testing.T) {
	assert.Equal(t, BadgeToneSuccess, StatusTone("Active"))
	assert.Equal(t, BadgeToneDanger, StatusTone("Urgent"))
	assert.Equal(t, BadgeToneNeutral, StatusTone("Whatever"))

	light := NewBadge("Pending")
	assert.Contains(t, light.Classes(), "bg-yellow-100")
	assert.Contains(t, light.View(), "Pending")

	dark := NewBadge("Pending").WithTheme(ModeDark)
	assert.Contains(t, dark.Classes(), "bg-yellow-900")
	assert.NotContains(t, dark.Classes(), "bg-yellow-100")

	assert.Contains(t, NewBadge("x").WithTone(BadgeToneInfo).Classes(), "text-blue-800")
}

func TestBadgeVariantsTableIsValid(t *testing.T) {
	assert.NoError(t, BadgeVariants.Validate())
}
