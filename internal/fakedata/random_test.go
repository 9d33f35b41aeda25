package fakedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexClampsOutOfRangeDraws(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, index(script(1.0), 3))
	assert.Equal(t, 0, index(script(-0.5), 3))
	assert.Equal(t, 0, index(script(0.5), 0))
}

func TestPickUsesFloorOfScaledDraw(t *testing.T) {
	t.Parallel()

	table := []string{"a", "b", "c", "d"}
	assert.Equal(t, "a", pick(script(0), table))
	assert.Equal(t, "b", pick(script(0.25), table))
	assert.Equal(t, "c", pick(script(0.74), table))
	assert.Equal(t, "d", pick(script(0.999), table))
}

func TestTokenDrawsBase36(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "000", token(script(0), 3))
	assert.Equal(t, "zzz", token(script(0.9999), 3))
	assert.Regexp(t, `^[0-9a-z]{8}$`, token(NewSeededSource(1, 2), 8))
}

func TestDefaultSourceIsUnitInterval(t *testing.T) {
	t.Parallel()

	src := DefaultSource()
	for i := 0; i < 1000; i++ {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
