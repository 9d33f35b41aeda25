package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classSet(classes string) map[string]bool {
	out := map[string]bool{}
	for _, c := range strings.Fields(classes) {
		out[c] = true
	}
	return out
}

func TestButtonVariantsTableIsValid(t *testing.T) {
	require.NoError(t, ButtonVariants.Validate())
}

func TestButtonClassesDefaults(t *testing.T) {
	got := ButtonClasses(ButtonProps{})
	want := "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium " +
		"transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-offset-2 " +
		"border border-transparent shadow-sm h-10 px-4 py-2 ring-offset-white " +
		"bg-blue-600 text-white hover:bg-blue-700 focus-visible:ring-blue-500"
	assert.Equal(t, want, got)
}

func TestButtonClassesTextActionHasNoFill(t *testing.T) {
	got := classSet(ButtonClasses(ButtonProps{Type: ButtonTypeTextAction}))

	assert.True(t, got["bg-transparent"])
	assert.True(t, got["underline-offset-4"])
	assert.True(t, got["hover:underline"])
	assert.True(t, got["h-auto"])
	assert.True(t, got["p-0"])
	assert.False(t, got["bg-blue-600"])
	assert.False(t, got["h-10"])
	assert.False(t, got["px-4"])
	assert.False(t, got["py-2"])
}

func TestButtonClassesOutlineAndGhostKeepTransparentBackground(t *testing.T) {
	for _, typ := range []ButtonType{ButtonTypeOutline, ButtonTypeGhost} {
		for _, color := range []ButtonColor{ButtonColorPrimary, ButtonColorSecondary, ButtonColorDanger, ButtonColorNeutral} {
			for _, mode := range []Mode{ModeLight, ModeDark} {
				got := ButtonClasses(ButtonProps{Type: typ, Color: color, Theme: mode})
				for _, cls := range strings.Fields(got) {
					if strings.HasPrefix(cls, "bg-") {
						assert.Equal(t, "bg-transparent", cls, "%s/%s/%s", typ, color, mode)
					}
				}
			}
		}
	}
}

func TestButtonClassesColorAndTheme(t *testing.T) {
	danger := classSet(ButtonClasses(ButtonProps{Color: ButtonColorDanger}))
	assert.True(t, danger["bg-red-600"])
	assert.False(t, danger["bg-blue-600"])

	dark := classSet(ButtonClasses(ButtonProps{Theme: ModeDark}))
	assert.True(t, dark["bg-blue-500"])
	assert.True(t, dark["ring-offset-gray-900"])
	assert.False(t, dark["ring-offset-white"])
}

func TestButtonClassesSizes(t *testing.T) {
	small := classSet(ButtonClasses(ButtonProps{Size: ButtonSizeSmall}))
	assert.True(t, small["h-8"])
	assert.True(t, small["text-xs"])
	assert.False(t, small["text-sm"])

	large := classSet(ButtonClasses(ButtonProps{Size: ButtonSizeLarge}))
	assert.True(t, large["h-12"])
	assert.True(t, large["px-6"])
	assert.True(t, large["text-base"])
}

func TestButtonClassesIconOnly(t *testing.T) {
	got := classSet(ButtonClasses(ButtonProps{Size: ButtonSizeSmall, IconOnly: true}))
	assert.True(t, got["w-8"])
	assert.True(t, got["p-0"])
	assert.True(t, got["gap-0"])
	assert.False(t, got["gap-2"])
	assert.False(t, got["px-3"])

	text := classSet(ButtonClasses(ButtonProps{Type: ButtonTypeTextAction, IconOnly: true}))
	assert.True(t, text["h-auto"])
	assert.True(t, text["w-auto"])
	assert.False(t, text["w-10"])
}

func TestButtonClassesDisabledLoading(t *testing.T) {
	loading := classSet(ButtonClasses(ButtonProps{Loading: true}))
	assert.True(t, loading["cursor-wait"])
	assert.True(t, loading["opacity-80"])

	both := classSet(ButtonClasses(ButtonProps{Loading: true, Disabled: true}))
	assert.True(t, both["opacity-50"])
	assert.True(t, both["cursor-not-allowed"])
	assert.True(t, both["pointer-events-none"])
	assert.False(t, both["opacity-80"])
	assert.False(t, both["cursor-wait"])
}

func TestButtonClassesOverrideWins(t *testing.T) {
	got := classSet(ButtonClasses(ButtonProps{Class: "bg-red-500 px-8 mt-2"}))
	assert.True(t, got["bg-red-500"])
	assert.True(t, got["px-8"])
	assert.True(t, got["mt-2"])
	assert.False(t, got["bg-blue-600"])
	assert.False(t, got["px-4"])
}

func TestButtonClassesDeterministic(t *testing.T) {
	props := ButtonProps{Type: ButtonTypeGhost, Color: ButtonColorNeutral, Theme: ModeDark, IconOnly: true}
	assert.Equal(t, ButtonClasses(props), ButtonClasses(props))
}

func TestButtonView(t *testing.T) {
	b := NewButton("Save", ButtonProps{})
	assert.Contains(t, b.View(), "Save")
	assert.Equal(t, ButtonClasses(ButtonProps{}), b.Classes())

	loading := NewButton("Save", ButtonProps{Loading: true})
	assert.Contains(t, loading.View(), loadingGlyph)

	icon := NewButton("Settings", ButtonProps{IconOnly: true}).WithIcon("⚙")
	assert.Contains(t, icon.View(), "⚙")
	assert.NotContains(t, icon.View(), "Settings")

	letter := NewButton("Settings", ButtonProps{IconOnly: true})
	assert.Equal(t, "S", letter.content())
}

func TestButtonGroupView(t *testing.T) {
	assert.Empty(t, NewButtonGroup().View())

	group := NewButtonGroup(NewButton("One", ButtonProps{})).
		AddButton(NewButton("Two", ButtonProps{Type: ButtonTypeTextAction}))
	out := group.View()
	assert.Contains(t, out, "One")
	assert.Contains(t, out, "Two")
}
