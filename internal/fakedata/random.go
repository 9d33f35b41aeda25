package fakedata

import (
	"math"
	"math/rand/v2"
	"strings"
)

// Source produces uniform floats in [0, 1). *rand.Rand from math/rand/v2
// satisfies it, as does any deterministic stream a test wants to inject.
type Source interface {
	Float64() float64
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() float64

// Float64 implements Source.
func (f SourceFunc) Float64() float64 { return f() }

// globalSource is the process-wide generator. The top-level math/rand/v2
// functions are safe for concurrent use, so no locking is needed here.
var globalSource Source = SourceFunc(rand.Float64)

// DefaultSource returns the process-wide random source.
func DefaultSource() Source {
	return globalSource
}

// NewSeededSource returns a PCG-backed source. Handy for tests that need a
// long deterministic stream rather than a scripted one.
func NewSeededSource(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// index maps one draw onto [0, n). A draw of exactly 1.0 from a misbehaving
// source would land on n, so the result is clamped.
func index(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(math.Floor(src.Float64() * float64(n)))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// pick selects uniformly from a non-empty lookup table.
func pick(src Source, table []string) string {
	return table[index(src, len(table))]
}

// maxDraw is the largest value rand.Float64 returns.
const maxDraw = 1 - 0x1p-53

// exactSpan is the widest span a float64 draw can address value by value.
const exactSpan = 1 << 53

// between draws an integer in [lo, hi]. Callers guarantee lo <= hi; any such
// pair is accepted, including math.MinInt to math.MaxInt, because the span is
// carried as a uint64 offset from lo.
func between(src Source, lo, hi int) int {
	span := uint64(hi) - uint64(lo)
	return int(uint64(lo) + offset(src, span))
}

// offset maps one draw onto [0, span]. Spans below 2^53 are split into equal
// buckets. Wider spans cannot be resolved bucket by bucket, so the draw is
// scaled so that the largest possible draw lands exactly on span.
func offset(src Source, span uint64) uint64 {
	draw := src.Float64()
	if span < exactSpan {
		f := math.Floor(draw * float64(span+1))
		switch {
		case f <= 0:
			return 0
		case f >= float64(span):
			return span
		}
		return uint64(f)
	}
	f := draw / maxDraw * float64(span)
	switch {
	case f <= 0:
		return 0
	case f >= float64(span):
		return span
	}
	return uint64(f)
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// token draws n base36 characters.
func token(src Source, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(base36[index(src, len(base36))])
	}
	return b.String()
}
