package variant

import (
	"sort"
	"strings"
)

// Merge joins class lists so that when two utilities target the same CSS
// property the later one wins. Identical classes collapse to their last
// position, and a shorthand such as p-4 evicts earlier longhands (px-2, pt-1).
// Modifiers scope conflicts: hover:bg-red-500 never evicts bg-blue-500.
// Classes the merger does not recognise only collapse with exact duplicates.
func Merge(classLists ...string) string {
	var classes []string
	for _, list := range classLists {
		classes = append(classes, strings.Fields(list)...)
	}

	taken := make(map[string]struct{}, len(classes))
	kept := make([]string, 0, len(classes))
	for i := len(classes) - 1; i >= 0; i-- {
		cls := classes[i]
		u := parseUtility(cls)
		key := u.scope + u.group
		if _, dup := taken[key]; dup {
			continue
		}
		taken[key] = struct{}{}
		for _, evicted := range shorthands[u.group] {
			taken[u.scope+evicted] = struct{}{}
		}
		kept = append(kept, cls)
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, " ")
}

type utility struct {
	// scope is the sorted modifier chain plus the important marker.
	scope string
	group string
}

func parseUtility(cls string) utility {
	parts := splitModifiers(cls)
	base := parts[len(parts)-1]
	mods := append([]string(nil), parts[:len(parts)-1]...)
	sort.Strings(mods)

	scope := strings.Join(mods, ":")
	if scope != "" {
		scope += ":"
	}
	if strings.HasPrefix(base, "!") {
		base = base[1:]
		scope += "!"
	}
	if strings.HasSuffix(base, "!") {
		base = strings.TrimSuffix(base, "!")
		scope += "!"
	}
	base = strings.TrimPrefix(base, "-")

	group, ok := classify(base)
	if !ok {
		group = "raw:" + base
	}
	return utility{scope: scope, group: group}
}

// splitModifiers splits on ':' outside arbitrary-value brackets.
func splitModifiers(cls string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(cls); i++ {
		switch cls[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				parts = append(parts, cls[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, cls[start:])
}

// shorthands lists the longhand groups a shorthand group overrides.
var shorthands = map[string][]string{
	"p":              {"px", "py", "pt", "pr", "pb", "pl", "ps", "pe"},
	"px":             {"pr", "pl", "ps", "pe"},
	"py":             {"pt", "pb"},
	"m":              {"mx", "my", "mt", "mr", "mb", "ml", "ms", "me"},
	"mx":             {"mr", "ml", "ms", "me"},
	"my":             {"mt", "mb"},
	"gap":            {"gap-x", "gap-y"},
	"size":           {"w", "h"},
	"inset":          {"inset-x", "inset-y", "top", "right", "bottom", "left"},
	"inset-x":        {"right", "left"},
	"inset-y":        {"top", "bottom"},
	"overflow":       {"overflow-x", "overflow-y"},
	"rounded":        {"rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"},
	"rounded-t":      {"rounded-tl", "rounded-tr"},
	"rounded-r":      {"rounded-tr", "rounded-br"},
	"rounded-b":      {"rounded-br", "rounded-bl"},
	"rounded-l":      {"rounded-tl", "rounded-bl"},
	"border-w":       {"border-w-x", "border-w-y", "border-w-t", "border-w-r", "border-w-b", "border-w-l"},
	"border-w-x":     {"border-w-r", "border-w-l"},
	"border-w-y":     {"border-w-t", "border-w-b"},
	"border-color":   {"border-color-x", "border-color-y", "border-color-t", "border-color-r", "border-color-b", "border-color-l"},
	"border-color-x": {"border-color-r", "border-color-l"},
	"border-color-y": {"border-color-t", "border-color-b"},
}

var exactGroups = map[string]string{
	"block": "display", "inline-block": "display", "inline": "display", "flex": "display",
	"inline-flex": "display", "grid": "display", "inline-grid": "display", "hidden": "display",
	"contents": "display", "table": "display", "flow-root": "display",

	"static": "position", "fixed": "position", "absolute": "position", "relative": "position", "sticky": "position",

	"visible": "visibility", "invisible": "visibility", "collapse": "visibility",

	"underline": "text-decoration", "overline": "text-decoration", "line-through": "text-decoration", "no-underline": "text-decoration",
	"uppercase": "text-transform", "lowercase": "text-transform", "capitalize": "text-transform", "normal-case": "text-transform",
	"italic": "font-style", "not-italic": "font-style",
	"truncate": "text-overflow",

	"border": "border-w", "border-x": "border-w-x", "border-y": "border-w-y", "border-t": "border-w-t",
	"border-r": "border-w-r", "border-b": "border-w-b", "border-l": "border-w-l",
	"rounded": "rounded", "rounded-t": "rounded-t", "rounded-r": "rounded-r", "rounded-b": "rounded-b", "rounded-l": "rounded-l",
	"shadow": "shadow", "ring": "ring-w", "ring-inset": "ring-inset", "outline": "outline-style",
	"transition": "transition", "grow": "grow", "shrink": "shrink",
}

// prefixGroups is ordered so longer prefixes are tried before their stems.
var prefixGroups = []struct {
	prefix string
	group  string
}{
	{"min-w-", "min-w"}, {"max-w-", "max-w"}, {"min-h-", "min-h"}, {"max-h-", "max-h"},
	{"size-", "size"}, {"w-", "w"}, {"h-", "h"},
	{"px-", "px"}, {"py-", "py"}, {"pt-", "pt"}, {"pr-", "pr"}, {"pb-", "pb"}, {"pl-", "pl"}, {"ps-", "ps"}, {"pe-", "pe"}, {"p-", "p"},
	{"mx-", "mx"}, {"my-", "my"}, {"mt-", "mt"}, {"mr-", "mr"}, {"mb-", "mb"}, {"ml-", "ml"}, {"ms-", "ms"}, {"me-", "me"}, {"m-", "m"},
	{"gap-x-", "gap-x"}, {"gap-y-", "gap-y"}, {"gap-", "gap"},
	{"space-x-", "space-x"}, {"space-y-", "space-y"},
	{"inset-x-", "inset-x"}, {"inset-y-", "inset-y"}, {"inset-", "inset"},
	{"top-", "top"}, {"right-", "right"}, {"bottom-", "bottom"}, {"left-", "left"},
	{"z-", "z"}, {"opacity-", "opacity"}, {"cursor-", "cursor"},
	{"items-", "align-items"}, {"justify-", "justify-content"}, {"self-", "align-self"}, {"content-", "align-content"},
	{"leading-", "line-height"}, {"tracking-", "letter-spacing"}, {"whitespace-", "whitespace"},
	{"overflow-x-", "overflow-x"}, {"overflow-y-", "overflow-y"}, {"overflow-", "overflow"},
	{"pointer-events-", "pointer-events"}, {"select-", "user-select"},
	{"duration-", "duration"}, {"ease-", "ease"}, {"delay-", "delay"}, {"animate-", "animate"},
	{"order-", "order"}, {"basis-", "basis"}, {"grow-", "grow"}, {"shrink-", "shrink"},
	{"grid-cols-", "grid-cols"}, {"grid-rows-", "grid-rows"}, {"col-span-", "col-span"}, {"row-span-", "row-span"},
	{"underline-offset-", "underline-offset"}, {"object-", "object-fit"}, {"aspect-", "aspect"},
	{"transition-", "transition"}, {"list-", "list-style"},
}

var (
	fontWeights = set("thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black")
	textSizes   = set("xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl")
	textAligns  = set("left", "center", "right", "justify", "start", "end")
	textWraps   = set("wrap", "nowrap", "balance", "pretty")
	shadowSizes = set("xs", "sm", "md", "lg", "xl", "2xl", "inner", "none")
	lineStyles  = set("solid", "dashed", "dotted", "double", "hidden", "none")
	bgSizes     = set("auto", "cover", "contain")
	bgAttach    = set("fixed", "local", "scroll")
	flexDirs    = set("row", "row-reverse", "col", "col-reverse")
	flexWraps   = set("wrap", "wrap-reverse", "nowrap")
	sides       = []string{"x", "y", "t", "r", "b", "l"}
	corners     = []string{"tl", "tr", "br", "bl", "t", "r", "b", "l"}
)

func set(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

func in(m map[string]struct{}, v string) bool {
	_, ok := m[v]
	return ok
}

// classify maps a bare utility (no modifiers) to the CSS property group it
// writes.
func classify(base string) (string, bool) {
	if g, ok := exactGroups[base]; ok {
		return g, true
	}

	switch {
	case strings.HasPrefix(base, "text-"):
		return classifyText(strings.TrimPrefix(base, "text-")), true
	case strings.HasPrefix(base, "bg-"):
		return classifyBackground(strings.TrimPrefix(base, "bg-")), true
	case strings.HasPrefix(base, "font-"):
		if in(fontWeights, strings.TrimPrefix(base, "font-")) {
			return "font-weight", true
		}
		return "font-family", true
	case strings.HasPrefix(base, "border-"):
		return classifyBorder(strings.TrimPrefix(base, "border-")), true
	case strings.HasPrefix(base, "rounded-"):
		return classifyRounded(strings.TrimPrefix(base, "rounded-")), true
	case strings.HasPrefix(base, "ring-offset-"):
		if isLength(strings.TrimPrefix(base, "ring-offset-")) {
			return "ring-offset-w", true
		}
		return "ring-offset-color", true
	case strings.HasPrefix(base, "ring-"):
		if isLength(strings.TrimPrefix(base, "ring-")) {
			return "ring-w", true
		}
		return "ring-color", true
	case strings.HasPrefix(base, "outline-offset-"):
		return "outline-offset", true
	case strings.HasPrefix(base, "outline-"):
		v := strings.TrimPrefix(base, "outline-")
		switch {
		case in(lineStyles, v):
			return "outline-style", true
		case isLength(v):
			return "outline-w", true
		}
		return "outline-color", true
	case strings.HasPrefix(base, "shadow-"):
		if in(shadowSizes, strings.TrimPrefix(base, "shadow-")) {
			return "shadow", true
		}
		return "shadow-color", true
	case strings.HasPrefix(base, "flex-"):
		v := strings.TrimPrefix(base, "flex-")
		switch {
		case in(flexDirs, v):
			return "flex-direction", true
		case in(flexWraps, v):
			return "flex-wrap", true
		}
		return "flex", true
	}

	for _, pg := range prefixGroups {
		if strings.HasPrefix(base, pg.prefix) {
			return pg.group, true
		}
	}
	return "", false
}

func classifyText(v string) string {
	switch {
	case in(textSizes, v):
		return "font-size"
	case in(textAligns, v):
		return "text-align"
	case in(textWraps, v):
		return "text-wrap"
	case v == "ellipsis" || v == "clip":
		return "text-overflow"
	case strings.HasPrefix(v, "[") && isLength(v):
		return "font-size"
	}
	return "text-color"
}

func classifyBackground(v string) string {
	switch {
	case in(bgSizes, v):
		return "bg-size"
	case in(bgAttach, v):
		return "bg-attachment"
	case v == "none" || strings.HasPrefix(v, "gradient-"):
		return "bg-image"
	case strings.HasPrefix(v, "repeat") || v == "no-repeat":
		return "bg-repeat"
	case strings.HasPrefix(v, "clip-"):
		return "bg-clip"
	case strings.HasPrefix(v, "opacity-"):
		return "bg-opacity"
	}
	return "bg-color"
}

func classifyBorder(v string) string {
	for _, side := range sides {
		if v == side {
			return "border-w-" + side
		}
		if rest, ok := strings.CutPrefix(v, side+"-"); ok {
			if isLength(rest) {
				return "border-w-" + side
			}
			return "border-color-" + side
		}
	}
	switch {
	case isLength(v):
		return "border-w"
	case in(lineStyles, v):
		return "border-style"
	case v == "collapse" || v == "separate":
		return "border-collapse"
	}
	return "border-color"
}

func classifyRounded(v string) string {
	for _, corner := range corners {
		if v == corner || strings.HasPrefix(v, corner+"-") {
			return "rounded-" + corner
		}
	}
	return "rounded"
}

// isLength reports whether v is a width-like value: a bare number, "px", or
// an arbitrary value starting with a digit.
func isLength(v string) bool {
	if v == "" || v == "px" {
		return true
	}
	if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") {
		inner := strings.TrimSuffix(strings.TrimPrefix(v, "["), "]")
		if strings.HasPrefix(inner, "length:") {
			return true
		}
		return inner != "" && inner[0] >= '0' && inner[0] <= '9'
	}
	for i := 0; i < len(v); i++ {
		if (v[i] < '0' || v[i] > '9') && v[i] != '.' {
			return false
		}
	}
	return true
}
