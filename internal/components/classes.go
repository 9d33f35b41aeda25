package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StyleFromClasses approximates a resolved utility class string with a
// lipgloss style. Only unmodified classes are considered; hover:, focus: and
// other state variants have no terminal equivalent. Vertical padding is
// dropped and horizontal padding is halved to fit character cells.
func StyleFromClasses(classes string, theme Theme) lipgloss.Style {
	style := lipgloss.NewStyle()
	bordered := false
	borderColor := theme.Border
	borderVisible := true

	for _, cls := range strings.Fields(classes) {
		if strings.Contains(cls, ":") {
			continue
		}
		switch {
		case cls == "border":
			bordered = true
		case cls == "border-0":
			bordered = false
		case cls == "underline":
			style = style.Underline(true)
		case cls == "font-semibold" || cls == "font-bold" || cls == "font-extrabold":
			style = style.Bold(true)
		case strings.HasPrefix(cls, "bg-"):
			if c, ok := ColorValue(strings.TrimPrefix(cls, "bg-")); ok {
				style = style.Background(c)
			} else {
				style = style.UnsetBackground()
			}
		case strings.HasPrefix(cls, "text-"):
			if c, ok := ColorValue(strings.TrimPrefix(cls, "text-")); ok {
				style = style.Foreground(c)
			}
		case strings.HasPrefix(cls, "border-"):
			value := strings.TrimPrefix(cls, "border-")
			if value == "transparent" {
				borderVisible = false
			} else if c, ok := ColorValue(value); ok {
				borderColor = c
				borderVisible = true
			}
		case strings.HasPrefix(cls, "px-") || strings.HasPrefix(cls, "p-"):
			if n, ok := spacingCells(cls[strings.Index(cls, "-")+1:]); ok {
				style = style.PaddingLeft(n).PaddingRight(n)
			}
		case strings.HasPrefix(cls, "opacity-"):
			if n, err := strconv.Atoi(strings.TrimPrefix(cls, "opacity-")); err == nil && n <= 60 {
				style = style.Faint(true)
			}
		}
	}

	if bordered && borderVisible {
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(borderColor)
	}
	return style
}

// spacingCells converts a Tailwind spacing step (quarter rem) to terminal
// cells, two steps per cell rounded up.
func spacingCells(step string) (int, bool) {
	n, err := strconv.Atoi(step)
	if err != nil || n < 0 {
		return 0, false
	}
	return (n + 1) / 2, true
}
