package fakedata

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentenceShape(t *testing.T) {
	t.Parallel()

	f := New(WithSource(script(0)))
	s, err := f.Text().Sentence(3)
	require.NoError(t, err)
	assert.Equal(t, "Lorem lorem lorem.", s)
}

func TestSentenceWordCount(t *testing.T) {
	t.Parallel()

	f := seededFaker(7)
	for _, n := range []int{1, 2, DefaultSentenceWords, 20} {
		s, err := f.Text().Sentence(n)
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(s, "."))
		assert.Len(t, strings.Fields(strings.TrimSuffix(s, ".")), n)
		assert.Equal(t, strings.ToUpper(s[:1]), s[:1])
	}
}

func TestSentenceZeroWords(t *testing.T) {
	t.Parallel()

	s, err := seededFaker(1).Text().Sentence(0)
	require.NoError(t, err)
	assert.Equal(t, ".", s)
}

func TestTextRejectsNegativeCounts(t *testing.T) {
	t.Parallel()

	text := seededFaker(1).Text()
	_, err := text.Sentence(-1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = text.Paragraph(-2)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestParagraphSentenceCount(t *testing.T) {
	t.Parallel()

	p, err := seededFaker(3).Text().Paragraph(DefaultParagraphSentences)
	require.NoError(t, err)
	assert.Equal(t, DefaultParagraphSentences, strings.Count(p, "."))

	empty, err := seededFaker(3).Text().Paragraph(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTextTablesPick(t *testing.T) {
	t.Parallel()

	text := New(WithSource(script(0))).Text()
	assert.Equal(t, titles[0], text.Title())
	assert.Equal(t, headings[0], text.Heading())
	assert.Equal(t, labels[0], text.Label())
	assert.Contains(t, words, seededFaker(9).Text().Word())
}
