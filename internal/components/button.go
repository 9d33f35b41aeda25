package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/wireframe/internal/variant"
)

// ButtonType is the visual treatment of a button.
type ButtonType string

const (
	ButtonTypeDefault    ButtonType = "default"
	ButtonTypeOutline    ButtonType = "outline"
	ButtonTypeGhost      ButtonType = "ghost"
	ButtonTypeTextAction ButtonType = "text-action"
)

// ButtonSize controls height, padding and type scale.
type ButtonSize string

const (
	ButtonSizeSmall  ButtonSize = "sm"
	ButtonSizeMedium ButtonSize = "md"
	ButtonSizeLarge  ButtonSize = "lg"
)

// ButtonColor is the semantic colour of a button.
type ButtonColor string

const (
	ButtonColorPrimary   ButtonColor = "primary"
	ButtonColorSecondary ButtonColor = "secondary"
	ButtonColorDanger    ButtonColor = "danger"
	ButtonColorNeutral   ButtonColor = "neutral"
)

// Axis names of ButtonVariants.
const (
	AxisButtonType = "buttonType"
	AxisSize       = "size"
	AxisColor      = "color"
	AxisTheme      = "theme"
	AxisDisabled   = "disabled"
	AxisLoading    = "loading"
	AxisIconOnly   = "iconOnly"
)

// ButtonProps selects a button variant. Zero values fall back to the axis
// defaults: default type, md size, primary colour, light theme.
type ButtonProps struct {
	Type     ButtonType
	Size     ButtonSize
	Color    ButtonColor
	Theme    Mode
	Disabled bool
	Loading  bool
	IconOnly bool
	// Class is appended last and wins over every table token.
	Class string
}

// Selection converts the props into a variant selection.
func (p ButtonProps) Selection() variant.Selection {
	return variant.Selection{
		AxisButtonType: string(p.Type),
		AxisSize:       string(p.Size),
		AxisColor:      string(p.Color),
		AxisTheme:      string(p.Theme),
		AxisDisabled:   variant.Flag(p.Disabled),
		AxisLoading:    variant.Flag(p.Loading),
		AxisIconOnly:   variant.Flag(p.IconOnly),
	}
}

// ButtonClasses resolves the utility classes for a button.
func ButtonClasses(p ButtonProps) string {
	return ButtonVariants.Resolve(p.Selection(), p.Class)
}

func flagAxis(name, on string) variant.Axis {
	return variant.Axis{
		Name:    name,
		Default: "false",
		Values: map[string][]string{
			"true":  variant.Tokens(on),
			"false": nil,
		},
	}
}

type when = variant.Selection

func rule(sel when, classes string) variant.CompoundRule {
	return variant.CompoundRule{When: sel, Tokens: variant.Tokens(classes)}
}

// ButtonVariants is the button variant table. Fill colours only come from
// compound rules keyed on the default type, so outline, ghost and
// text-action buttons never pick up a solid background.
var ButtonVariants = variant.Config{
	Base: variant.Tokens("inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-offset-2"),
	Axes: []variant.Axis{
		{Name: AxisButtonType, Default: string(ButtonTypeDefault), Values: map[string][]string{
			string(ButtonTypeDefault):    variant.Tokens("border border-transparent shadow-sm"),
			string(ButtonTypeOutline):    variant.Tokens("border bg-transparent shadow-sm"),
			string(ButtonTypeGhost):      variant.Tokens("border border-transparent bg-transparent shadow-none"),
			string(ButtonTypeTextAction): variant.Tokens("border-0 bg-transparent shadow-none underline-offset-4 hover:underline"),
		}},
		{Name: AxisSize, Default: string(ButtonSizeMedium), Values: map[string][]string{
			string(ButtonSizeSmall):  variant.Tokens("h-8 px-3 text-xs"),
			string(ButtonSizeMedium): variant.Tokens("h-10 px-4 py-2"),
			string(ButtonSizeLarge):  variant.Tokens("h-12 px-6 text-base"),
		}},
		{Name: AxisColor, Default: string(ButtonColorPrimary), Values: map[string][]string{
			string(ButtonColorPrimary):   nil,
			string(ButtonColorSecondary): nil,
			string(ButtonColorDanger):    nil,
			string(ButtonColorNeutral):   nil,
		}},
		{Name: AxisTheme, Default: string(ModeLight), Values: map[string][]string{
			string(ModeLight): variant.Tokens("ring-offset-white"),
			string(ModeDark):  variant.Tokens("ring-offset-gray-900"),
		}},
		flagAxis(AxisDisabled, "pointer-events-none opacity-50 cursor-not-allowed"),
		flagAxis(AxisLoading, "cursor-wait opacity-80"),
		flagAxis(AxisIconOnly, "gap-0"),
	},
	Compounds: []variant.CompoundRule{
		// solid fills
		rule(when{AxisButtonType: "default", AxisColor: "primary", AxisTheme: "light"}, "bg-blue-600 text-white hover:bg-blue-700 focus-visible:ring-blue-500"),
		rule(when{AxisButtonType: "default", AxisColor: "primary", AxisTheme: "dark"}, "bg-blue-500 text-white hover:bg-blue-400 focus-visible:ring-blue-400"),
		rule(when{AxisButtonType: "default", AxisColor: "secondary", AxisTheme: "light"}, "bg-gray-100 text-gray-900 hover:bg-gray-200 focus-visible:ring-gray-400"),
		rule(when{AxisButtonType: "default", AxisColor: "secondary", AxisTheme: "dark"}, "bg-gray-800 text-gray-100 hover:bg-gray-700 focus-visible:ring-gray-500"),
		rule(when{AxisButtonType: "default", AxisColor: "danger", AxisTheme: "light"}, "bg-red-600 text-white hover:bg-red-700 focus-visible:ring-red-500"),
		rule(when{AxisButtonType: "default", AxisColor: "danger", AxisTheme: "dark"}, "bg-red-500 text-white hover:bg-red-400 focus-visible:ring-red-400"),
		rule(when{AxisButtonType: "default", AxisColor: "neutral", AxisTheme: "light"}, "bg-gray-900 text-white hover:bg-gray-800 focus-visible:ring-gray-700"),
		rule(when{AxisButtonType: "default", AxisColor: "neutral", AxisTheme: "dark"}, "bg-white text-gray-900 hover:bg-gray-200 focus-visible:ring-gray-300"),

		// outline
		rule(when{AxisButtonType: "outline", AxisColor: "primary"}, "border-blue-600 text-blue-600 hover:bg-blue-50 focus-visible:ring-blue-500"),
		rule(when{AxisButtonType: "outline", AxisColor: "secondary"}, "border-gray-300 text-gray-700 hover:bg-gray-50 focus-visible:ring-gray-400"),
		rule(when{AxisButtonType: "outline", AxisColor: "danger"}, "border-red-600 text-red-600 hover:bg-red-50 focus-visible:ring-red-500"),
		rule(when{AxisButtonType: "outline", AxisColor: "neutral"}, "border-gray-900 text-gray-900 hover:bg-gray-100 focus-visible:ring-gray-700"),
		rule(when{AxisButtonType: "outline", AxisColor: "primary", AxisTheme: "dark"}, "border-blue-400 text-blue-400 hover:bg-blue-900"),
		rule(when{AxisButtonType: "outline", AxisColor: "secondary", AxisTheme: "dark"}, "border-gray-600 text-gray-200 hover:bg-gray-800"),
		rule(when{AxisButtonType: "outline", AxisColor: "danger", AxisTheme: "dark"}, "border-red-400 text-red-400 hover:bg-red-900"),
		rule(when{AxisButtonType: "outline", AxisColor: "neutral", AxisTheme: "dark"}, "border-gray-100 text-gray-100 hover:bg-gray-800"),

		// ghost
		rule(when{AxisButtonType: "ghost", AxisColor: "primary"}, "text-blue-600 hover:bg-blue-50 focus-visible:ring-blue-500"),
		rule(when{AxisButtonType: "ghost", AxisColor: "secondary"}, "text-gray-700 hover:bg-gray-100 focus-visible:ring-gray-400"),
		rule(when{AxisButtonType: "ghost", AxisColor: "danger"}, "text-red-600 hover:bg-red-50 focus-visible:ring-red-500"),
		rule(when{AxisButtonType: "ghost", AxisColor: "neutral"}, "text-gray-900 hover:bg-gray-100 focus-visible:ring-gray-700"),
		rule(when{AxisButtonType: "ghost", AxisTheme: "dark"}, "hover:bg-gray-800"),
		rule(when{AxisButtonType: "ghost", AxisColor: "neutral", AxisTheme: "dark"}, "text-gray-100"),

		// text-action
		rule(when{AxisButtonType: "text-action"}, "h-auto p-0"),
		rule(when{AxisButtonType: "text-action", AxisColor: "primary"}, "text-blue-600 hover:text-blue-700"),
		rule(when{AxisButtonType: "text-action", AxisColor: "secondary"}, "text-gray-600 hover:text-gray-800"),
		rule(when{AxisButtonType: "text-action", AxisColor: "danger"}, "text-red-600 hover:text-red-700"),
		rule(when{AxisButtonType: "text-action", AxisColor: "neutral"}, "text-gray-900 hover:text-gray-700"),
		rule(when{AxisButtonType: "text-action", AxisColor: "primary", AxisTheme: "dark"}, "text-blue-400 hover:text-blue-300"),
		rule(when{AxisButtonType: "text-action", AxisColor: "danger", AxisTheme: "dark"}, "text-red-400 hover:text-red-300"),

		// icon-only squares
		rule(when{AxisIconOnly: "true", AxisSize: "sm"}, "h-8 w-8 p-0"),
		rule(when{AxisIconOnly: "true", AxisSize: "md"}, "h-10 w-10 p-0"),
		rule(when{AxisIconOnly: "true", AxisSize: "lg"}, "h-12 w-12 p-0"),
		rule(when{AxisIconOnly: "true", AxisButtonType: "text-action"}, "h-auto w-auto"),

		rule(when{AxisLoading: "true", AxisDisabled: "true"}, "opacity-50 cursor-not-allowed"),
	},
}

const loadingGlyph = "◌"

// Button renders a label using the terminal approximation of its classes.
type Button struct {
	label string
	icon  string
	props ButtonProps
}

// NewButton creates a button with the given label and props.
func NewButton(label string, props ButtonProps) *Button {
	return &Button{label: label, props: props}
}

// WithProps replaces the button props.
func (b *Button) WithProps(props ButtonProps) *Button {
	b.props = props
	return b
}

// WithIcon sets the glyph shown before the label, or alone when IconOnly.
func (b *Button) WithIcon(icon string) *Button {
	b.icon = icon
	return b
}

// Props returns the current props.
func (b *Button) Props() ButtonProps {
	return b.props
}

// Classes returns the resolved utility classes.
func (b *Button) Classes() string {
	return ButtonClasses(b.props)
}

// View renders the button.
func (b *Button) View() string {
	style := StyleFromClasses(b.Classes(), ThemeFor(b.props.Theme))
	return style.Render(b.content())
}

func (b *Button) content() string {
	var parts []string
	if b.props.Loading {
		parts = append(parts, loadingGlyph)
	}
	switch {
	case b.props.IconOnly && b.icon != "":
		parts = append(parts, b.icon)
	case b.props.IconOnly:
		if r := []rune(b.label); len(r) > 0 {
			parts = append(parts, string(r[0]))
		}
	default:
		if b.icon != "" {
			parts = append(parts, b.icon)
		}
		if b.label != "" {
			parts = append(parts, b.label)
		}
	}
	return strings.Join(parts, " ")
}

// ButtonGroup lays buttons out horizontally.
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a button group with single-cell spacing.
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{buttons: buttons, spacing: 1}
}

// WithSpacing sets the gap between buttons.
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	if spacing >= 0 {
		bg.spacing = spacing
	}
	return bg
}

// AddButton appends a button.
func (bg *ButtonGroup) AddButton(button *Button) *ButtonGroup {
	bg.buttons = append(bg.buttons, button)
	return bg
}

// View renders the group.
func (bg *ButtonGroup) View() string {
	if len(bg.buttons) == 0 {
		return ""
	}
	views := make([]string, 0, len(bg.buttons)*2)
	for i, button := range bg.buttons {
		if i > 0 && bg.spacing > 0 {
			views = append(views, strings.Repeat(" ", bg.spacing))
		}
		views = append(views, button.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
