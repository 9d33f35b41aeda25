package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/wireframe/internal/fakedata"
)

// BarChart draws horizontal bars scaled to the largest value.
type BarChart struct {
	bars  []fakedata.CategoryValue
	width int
	theme Theme
}

// NewBarChart creates a chart from category values.
func NewBarChart(bars []fakedata.CategoryValue) *BarChart {
	return &BarChart{bars: bars, width: 30, theme: LightTheme()}
}

// PieBarChart adapts pie slices to bars, labelled in percent.
func PieBarChart(slices []fakedata.PieSlice) *BarChart {
	bars := make([]fakedata.CategoryValue, len(slices))
	for i, s := range slices {
		bars[i] = fakedata.CategoryValue{Name: s.Label, Value: s.Value}
	}
	return NewBarChart(bars)
}

// WithWidth sets the maximum bar length in cells.
func (c *BarChart) WithWidth(width int) *BarChart {
	if width > 0 {
		c.width = width
	}
	return c
}

// WithTheme sets the bar colours.
func (c *BarChart) WithTheme(theme Theme) *BarChart {
	c.theme = theme
	return c
}

// View renders one line per bar.
func (c *BarChart) View() string {
	if len(c.bars) == 0 {
		return ""
	}
	peak, labelWidth := 0, 0
	for _, b := range c.bars {
		peak = max(peak, b.Value)
		labelWidth = max(labelWidth, lipgloss.Width(b.Name))
	}

	label := lipgloss.NewStyle().Foreground(c.theme.Muted).Width(labelWidth)
	bar := lipgloss.NewStyle().Foreground(c.theme.Accent)
	lines := make([]string, len(c.bars))
	for i, b := range c.bars {
		n := 0
		if peak > 0 {
			n = b.Value * c.width / peak
		}
		lines[i] = fmt.Sprintf("%s %s %d", label.Render(b.Name), bar.Render(strings.Repeat("█", n)), b.Value)
	}
	return strings.Join(lines, "\n")
}

// Sparkline compresses a series into block glyphs.
func Sparkline(points []fakedata.SeriesPoint) string {
	const ticks = "▁▂▃▄▅▆▇█"
	glyphs := []rune(ticks)
	if len(points) == 0 {
		return ""
	}
	lo, hi := points[0].Value, points[0].Value
	for _, p := range points {
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}
	var sb strings.Builder
	for _, p := range points {
		idx := 0
		if hi > lo {
			idx = (p.Value - lo) * (len(glyphs) - 1) / (hi - lo)
		}
		sb.WriteRune(glyphs[idx])
	}
	return sb.String()
}
