package fakedata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryEntriesRunWithDefaults(t *testing.T) {
	t.Parallel()

	f := seededFaker(31)
	for _, name := range Names() {
		entry, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, entry.Name)
		assert.NotEmpty(t, entry.Description, name)

		out, err := entry.Run(f, nil)
		require.NoError(t, err, name)
		assert.NotNil(t, out, name)
	}
}

func TestRegistryCoversEveryCategory(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"text.word", "text.sentence", "text.paragraph", "text.title", "text.heading", "text.label",
		"user.name", "user.email", "user.avatar", "user.role",
		"number.integer", "number.decimal", "number.currency", "number.percentage", "number.phone",
		"date.recent", "date.future", "date.formatted", "date.time",
		"status.order", "status.generic", "status.priority", "status.tag",
		"list.items", "list.navigation",
		"media.image", "media.icon", "media.color",
		"chart.timeSeries", "chart.categories", "chart.pie",
	} {
		_, err := Lookup(name)
		assert.NoError(t, err, name)
	}
}

func TestRegistryArgs(t *testing.T) {
	t.Parallel()

	entry, err := Lookup("number.integer")
	require.NoError(t, err)

	out, err := entry.Run(seededFaker(1), Args{"min": "7", "max": "7"})
	require.NoError(t, err)
	assert.Equal(t, 7, out)

	_, err = entry.Run(seededFaker(1), Args{"min": "nope"})
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = entry.Run(seededFaker(1), Args{"min": "9", "max": "1"})
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	sentence, err := Registry["text.sentence"].Run(New(WithSource(script(0))), Args{"words": "2"})
	require.NoError(t, err)
	assert.Equal(t, "Lorem lorem.", sentence)
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	_, err := Lookup("user.shoeSize")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
}
