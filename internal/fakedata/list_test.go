package fakedata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvokesEachTime(t *testing.T) {
	t.Parallel()

	calls := 0
	out, err := Generate(4, func() int {
		calls++
		return calls
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, out)
	assert.Equal(t, 4, calls)
}

func TestGenerateIndependentValues(t *testing.T) {
	t.Parallel()

	f := seededFaker(21)
	items, err := Generate(3, func() []string { return []string{f.User().Name()} })
	require.NoError(t, err)
	require.Len(t, items, 3)

	items[0][0] = "mutated"
	assert.NotEqual(t, "mutated", items[1][0])
	assert.NotEqual(t, "mutated", items[2][0])
}

func TestGenerateEdgeCases(t *testing.T) {
	t.Parallel()

	empty, err := Generate(0, func() string { return "x" })
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = Generate(-1, func() string { return "x" })
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = Generate[string](2, nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestItems(t *testing.T) {
	t.Parallel()

	items, err := seededFaker(5).List().Items(DefaultItemCount)
	require.NoError(t, err)
	require.Len(t, items, DefaultItemCount)
	for i, item := range items {
		assert.Equal(t, i+1, item.ID)
		assert.NotEmpty(t, item.Title)
		assert.Regexp(t, emailPattern, item.Email)
		assert.Contains(t, genericStatuses, item.Status)
		assert.Contains(t, priorities, item.Priority)
		assert.Contains(t, item.Avatar, "seed=")
		assert.Regexp(t, `^\$`, item.Amount)
	}

	_, err = seededFaker(5).List().Items(-3)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestNavigationIsFixed(t *testing.T) {
	t.Parallel()

	list := seededFaker(1).List()
	nav := list.Navigation()
	require.Len(t, nav, 6)
	assert.Equal(t, NavItem{Label: "Dashboard", Href: "/", Icon: "home"}, nav[0])

	nav[0].Label = "changed"
	assert.Equal(t, "Dashboard", list.Navigation()[0].Label)
	assert.Equal(t, seededFaker(2).List().Navigation(), list.Navigation())
}
