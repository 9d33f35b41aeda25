// Package variant resolves a small set of orthogonal style axes (type, size,
// colour, theme, state flags) into one merged utility-class string.
//
// A Config is a declarative table:
//
//	buttons := variant.Config{
//		Base: variant.Tokens("inline-flex items-center rounded-md"),
//		Axes: []variant.Axis{
//			{Name: "size", Default: "md", Values: map[string][]string{
//				"sm": variant.Tokens("h-8 px-3"),
//				"md": variant.Tokens("h-10 px-4"),
//			}},
//		},
//		Compounds: []variant.CompoundRule{
//			{When: variant.Selection{"size": "sm", "disabled": "true"}, Tokens: variant.Tokens("opacity-40")},
//		},
//	}
//	classes := buttons.Resolve(variant.Selection{"size": "sm"}, "mt-2")
//
// Resolution layers base, axis, compound and override tokens in that order and
// merges the result so the last token per CSS property wins.
package variant

import (
	"fmt"
	"strings"
)

// Selection maps an axis name to its selected value.
type Selection map[string]string

// Flag encodes a boolean axis value.
func Flag(on bool) string {
	if on {
		return "true"
	}
	return "false"
}

// Tokens splits a space separated class list.
func Tokens(classes string) []string {
	return strings.Fields(classes)
}

// Axis is one named style dimension and the tokens each of its values adds.
type Axis struct {
	Name    string
	Default string
	Values  map[string][]string
}

// CompoundRule adds Tokens when every pair in When matches the effective
// selection.
type CompoundRule struct {
	When   Selection
	Tokens []string
}

// Config is a complete variant table.
type Config struct {
	Base      []string
	Axes      []Axis
	Compounds []CompoundRule
}

// Resolve returns the merged class string for sel followed by overrides.
// Unknown axes and values contribute nothing.
func (c Config) Resolve(sel Selection, overrides ...string) string {
	return Merge(c.Sequence(sel, overrides...)...)
}

// Sequence returns the unmerged token sequence in application order.
func (c Config) Sequence(sel Selection, overrides ...string) []string {
	effective := c.Effective(sel)

	seq := make([]string, 0, len(c.Base)+len(overrides)+8)
	seq = append(seq, c.Base...)
	for _, axis := range c.Axes {
		seq = append(seq, axis.Values[effective[axis.Name]]...)
	}
	for _, rule := range c.Compounds {
		if rule.matches(effective) {
			seq = append(seq, rule.Tokens...)
		}
	}
	for _, o := range overrides {
		seq = append(seq, strings.Fields(o)...)
	}
	return seq
}

// Effective fills axis defaults into a copy of sel. Entries for axes the
// config does not declare are kept so compound rules can still see them.
func (c Config) Effective(sel Selection) Selection {
	out := make(Selection, len(c.Axes)+len(sel))
	for _, axis := range c.Axes {
		if axis.Default != "" {
			out[axis.Name] = axis.Default
		}
	}
	for k, v := range sel {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

func (r CompoundRule) matches(sel Selection) bool {
	for axis, want := range r.When {
		got, ok := sel[axis]
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Validate reports table authoring mistakes: unnamed or duplicate axes,
// defaults that are not declared values, and compound rules referencing
// unknown axes or values. Resolve never calls it.
func (c Config) Validate() error {
	axes := make(map[string]Axis, len(c.Axes))
	var problems []string
	for i, axis := range c.Axes {
		if axis.Name == "" {
			problems = append(problems, fmt.Sprintf("axis %d has no name", i))
			continue
		}
		if _, dup := axes[axis.Name]; dup {
			problems = append(problems, fmt.Sprintf("axis %q declared twice", axis.Name))
			continue
		}
		if axis.Default != "" {
			if _, ok := axis.Values[axis.Default]; !ok {
				problems = append(problems, fmt.Sprintf("axis %q default %q is not a declared value", axis.Name, axis.Default))
			}
		}
		axes[axis.Name] = axis
	}
	for i, rule := range c.Compounds {
		if len(rule.When) == 0 {
			problems = append(problems, fmt.Sprintf("compound %d has an empty condition", i))
		}
		for name, value := range rule.When {
			axis, ok := axes[name]
			if !ok {
				problems = append(problems, fmt.Sprintf("compound %d references unknown axis %q", i, name))
				continue
			}
			if _, ok := axis.Values[value]; !ok {
				problems = append(problems, fmt.Sprintf("compound %d references unknown value %q of axis %q", i, value, name))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid variant config: %s", strings.Join(problems, "; "))
	}
	return nil
}
