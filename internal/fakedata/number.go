package fakedata

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Number generates numeric values and number-shaped strings.
type Number struct{ f *Faker }

// Integer returns an integer in [min, max].
func (n Number) Integer(min, max int) (int, error) {
	if err := checkRange("number.integer", min, max); err != nil {
		return 0, err
	}
	return n.f.between(min, max), nil
}

// Decimal returns a float in [min, max) rounded to decimals places.
func (n Number) Decimal(min, max float64, decimals int) (float64, error) {
	if err := checkFloatRange("number.decimal", min, max); err != nil {
		return 0, err
	}
	if decimals < 0 {
		return 0, invalidArgument("number.decimal", "decimals must not be negative", map[string]any{"decimals": decimals})
	}
	return n.decimal(min, max, decimals), nil
}

// checkFloatRange rejects non-finite bounds, inverted bounds, and spans too
// wide to represent as a float64.
func checkFloatRange(generator string, min, max float64) error {
	ctx := map[string]any{"min": min, "max": max}
	switch {
	case math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0):
		return invalidArgument(generator, "bounds must be finite", ctx)
	case min > max:
		return invalidArgument(generator, "min must not exceed max", ctx)
	case math.IsInf(max-min, 0):
		return invalidArgument(generator, "range is too wide", ctx)
	}
	return nil
}

func (n Number) decimal(min, max float64, decimals int) float64 {
	v := n.f.src.Float64()*(max-min) + min
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

// Currency renders a dollar amount in [min, max) with thousands grouping,
// e.g. "$1,234.5".
func (n Number) Currency(min, max float64) (string, error) {
	if err := checkFloatRange("number.currency", min, max); err != nil {
		return "", err
	}
	return "$" + humanize.CommafWithDigits(n.decimal(min, max, 2), 2), nil
}

// Percentage returns an integer percentage such as "42%".
func (n Number) Percentage() string {
	return strconv.Itoa(n.f.between(0, 100)) + "%"
}

// Phone returns a North American style number "(AAA) PPP-LLLL".
func (n Number) Phone() string {
	area := n.f.between(200, 999)
	prefix := n.f.between(200, 999)
	line := n.f.between(1000, 9999)
	return fmt.Sprintf("(%d) %d-%d", area, prefix, line)
}
