package fakedata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSeriesStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	chart := seededFaker(10).Chart()
	for _, points := range []int{0, 1, DefaultTimeSeriesPoints, 30} {
		series, err := chart.TimeSeries(points)
		require.NoError(t, err)
		require.Len(t, series, points)
		for i, p := range series {
			assert.GreaterOrEqual(t, p.Value, 100)
			assert.LessOrEqual(t, p.Value, 1000)
			if i > 0 {
				assert.True(t, p.Date.After(series[i-1].Date), "dates must increase")
			}
		}
		if points > 0 {
			assert.Equal(t, fixedNow.AddDate(0, 0, -points), series[0].Date)
		}
	}

	_, err := chart.TimeSeries(-1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestTimeSeriesLabels(t *testing.T) {
	t.Parallel()

	series, err := seededFaker(1).Chart().TimeSeries(2)
	require.NoError(t, err)
	assert.Equal(t, "Mar 13", series[0].Label)
	assert.Equal(t, "Mar 14", series[1].Label)
}

func TestCategories(t *testing.T) {
	t.Parallel()

	chart := seededFaker(2).Chart()
	cats, err := chart.Categories(DefaultCategoryCount)
	require.NoError(t, err)
	require.Len(t, cats, DefaultCategoryCount)
	for i, c := range cats {
		assert.Equal(t, chartCategories[i], c.Name)
		assert.GreaterOrEqual(t, c.Value, 100)
		assert.LessOrEqual(t, c.Value, 1000)
	}

	_, err = chart.Categories(len(chartCategories) + 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = chart.Categories(-1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestPieSumsToHundred(t *testing.T) {
	t.Parallel()

	chart := seededFaker(99).Chart()
	for i := 0; i < 5000; i++ {
		assertPie(t, chart.Pie())
	}
}

func TestPieClampsSmallRemainders(t *testing.T) {
	t.Parallel()

	// Maximal draws: six slices, each taking half of what is left.
	slices := New(WithSource(script(0.999))).Chart().Pie()
	assertPie(t, slices)
	values := make([]int, len(slices))
	for i, s := range slices {
		values[i] = s.Value
	}
	assert.Equal(t, []int{50, 25, 12, 6, 3, 4}, values)

	// Minimal draws: three slices.
	assertPie(t, New(WithSource(script(0))).Chart().Pie())
}

func assertPie(t *testing.T, slices []PieSlice) {
	t.Helper()

	require.GreaterOrEqual(t, len(slices), 3)
	require.LessOrEqual(t, len(slices), 6)
	total := 0
	for _, s := range slices {
		require.GreaterOrEqual(t, s.Value, 1)
		require.NotEmpty(t, s.Label)
		total += s.Value
	}
	require.Equal(t, 100, total)
}
