package components

import "github.com/alexisbeaulieu97/wireframe/internal/variant"

// BadgeTone is the semantic colour of a badge.
type BadgeTone string

const (
	BadgeToneNeutral BadgeTone = "neutral"
	BadgeToneSuccess BadgeTone = "success"
	BadgeToneWarning BadgeTone = "warning"
	BadgeToneDanger  BadgeTone = "danger"
	BadgeToneInfo    BadgeTone = "info"
)

// BadgeVariants is the status pill table.
var BadgeVariants = variant.Config{
	Base: variant.Tokens("inline-flex items-center rounded-full px-2 text-xs font-semibold"),
	Axes: []variant.Axis{
		{Name: "tone", Default: string(BadgeToneNeutral), Values: map[string][]string{
			string(BadgeToneNeutral): variant.Tokens("bg-gray-100 text-gray-700"),
			string(BadgeToneSuccess): variant.Tokens("bg-green-100 text-green-800"),
			string(BadgeToneWarning): variant.Tokens("bg-yellow-100 text-yellow-800"),
			string(BadgeToneDanger):  variant.Tokens("bg-red-100 text-red-800"),
			string(BadgeToneInfo):    variant.Tokens("bg-blue-100 text-blue-800"),
		}},
		{Name: AxisTheme, Default: string(ModeLight), Values: map[string][]string{
			string(ModeLight): nil,
			string(ModeDark):  nil,
		}},
	},
	Compounds: []variant.CompoundRule{
		rule(when{"tone": "neutral", AxisTheme: "dark"}, "bg-gray-700 text-gray-100"),
		rule(when{"tone": "success", AxisTheme: "dark"}, "bg-green-900 text-green-200"),
		rule(when{"tone": "warning", AxisTheme: "dark"}, "bg-yellow-900 text-yellow-200"),
		rule(when{"tone": "danger", AxisTheme: "dark"}, "bg-red-900 text-red-200"),
		rule(when{"tone": "info", AxisTheme: "dark"}, "bg-blue-900 text-blue-200"),
	},
}

var statusTones = map[string]BadgeTone{
	"Active": BadgeToneSuccess, "Completed": BadgeToneSuccess, "Delivered": BadgeToneSuccess,
	"Pending": BadgeToneWarning, "Processing": BadgeToneInfo, "Shipped": BadgeToneInfo,
	"Draft": BadgeToneNeutral, "Inactive": BadgeToneNeutral, "Archived": BadgeToneNeutral,
	"Cancelled": BadgeToneDanger, "Refunded": BadgeToneDanger,
	"Low": BadgeToneNeutral, "Medium": BadgeToneInfo, "High": BadgeToneWarning, "Urgent": BadgeToneDanger,
}

// StatusTone picks a tone for the status and priority labels the faker
// emits. Unknown labels are neutral.
func StatusTone(label string) BadgeTone {
	if tone, ok := statusTones[label]; ok {
		return tone
	}
	return BadgeToneNeutral
}

// Badge is a small status pill.
type Badge struct {
	text  string
	tone  BadgeTone
	theme Mode
}

// NewBadge creates a badge toned for its label.
func NewBadge(text string) *Badge {
	return &Badge{text: text, tone: StatusTone(text), theme: ModeLight}
}

// WithTone overrides the tone.
func (b *Badge) WithTone(tone BadgeTone) *Badge {
	b.tone = tone
	return b
}

// WithTheme sets light or dark rendering.
func (b *Badge) WithTheme(mode Mode) *Badge {
	b.theme = mode
	return b
}

// Classes returns the resolved utility classes.
func (b *Badge) Classes() string {
	return BadgeVariants.Resolve(variant.Selection{"tone": string(b.tone), AxisTheme: string(b.theme)})
}

// View renders the badge.
func (b *Badge) View() string {
	return StyleFromClasses(b.Classes(), ThemeFor(b.theme)).Render(b.text)
}
