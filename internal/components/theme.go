package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

// PaletteShades is a Tailwind-style colour scale indexed 50, 100 ... 900.
type PaletteShades [paletteShadeCount]lipgloss.Color

// Shade returns the colour for a Tailwind shade number such as 600.
func (ps PaletteShades) Shade(shade int) (lipgloss.Color, bool) {
	idx := -1
	switch {
	case shade == 50:
		idx = 0
	case shade >= 100 && shade <= 900 && shade%100 == 0:
		idx = shade / 100
	}
	if idx < 0 || idx >= paletteShadeCount {
		return "", false
	}
	return ps[idx], true
}

func shades(hex ...string) PaletteShades {
	var ps PaletteShades
	for i := 0; i < paletteShadeCount && i < len(hex); i++ {
		ps[i] = lipgloss.Color(hex[i])
	}
	return ps
}

// Palette holds the colour families the button and widget tables reference.
var Palette = map[string]PaletteShades{
	"slate":  shades("#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"),
	"gray":   shades("#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"),
	"blue":   shades("#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"),
	"red":    shades("#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"),
	"green":  shades("#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"),
	"yellow": shades("#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"),
	"purple": shades("#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87"),
	"cyan":   shades("#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63"),
}

// ColorValue resolves a utility colour value ("blue-600", "white",
// "[#ff00aa]") to a terminal colour. Transparent and unknown values report
// false.
func ColorValue(value string) (lipgloss.Color, bool) {
	switch value {
	case "white":
		return lipgloss.Color("#ffffff"), true
	case "black":
		return lipgloss.Color("#000000"), true
	case "", "transparent", "current", "inherit":
		return "", false
	}
	if strings.HasPrefix(value, "[#") && strings.HasSuffix(value, "]") {
		return lipgloss.Color(value[1 : len(value)-1]), true
	}

	cut := strings.LastIndex(value, "-")
	if cut < 0 {
		return "", false
	}
	family, ok := Palette[value[:cut]]
	if !ok {
		return "", false
	}
	shade, err := strconv.Atoi(value[cut+1:])
	if err != nil {
		return "", false
	}
	return family.Shade(shade)
}

// Mode selects the light or dark surface set.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Theme carries the surface colours widgets draw on.
type Theme struct {
	Mode      Mode
	Surface   lipgloss.Color
	OnSurface lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Accent    lipgloss.Color
	Positive  lipgloss.Color
	Negative  lipgloss.Color
}

// LightTheme returns the default light surfaces.
func LightTheme() Theme {
	return Theme{
		Mode:      ModeLight,
		Surface:   "#ffffff",
		OnSurface: Palette["gray"][9],
		Muted:     Palette["gray"][5],
		Border:    Palette["gray"][2],
		Accent:    Palette["blue"][6],
		Positive:  Palette["green"][6],
		Negative:  Palette["red"][6],
	}
}

// DarkTheme returns the dark surfaces.
func DarkTheme() Theme {
	return Theme{
		Mode:      ModeDark,
		Surface:   Palette["gray"][9],
		OnSurface: Palette["gray"][1],
		Muted:     Palette["gray"][4],
		Border:    Palette["gray"][7],
		Accent:    Palette["blue"][4],
		Positive:  Palette["green"][4],
		Negative:  Palette["red"][4],
	}
}

// ThemeFor maps a mode name to its theme, defaulting to light.
func ThemeFor(mode Mode) Theme {
	if mode == ModeDark {
		return DarkTheme()
	}
	return LightTheme()
}
