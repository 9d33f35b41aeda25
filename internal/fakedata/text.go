package fakedata

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text generates lorem-style copy and UI strings.
type Text struct{ f *Faker }

// Word returns one word from the word table.
func (t Text) Word() string {
	return t.f.pick(words)
}

// Sentence joins wordCount words, capitalises the first letter and ends with
// a period.
func (t Text) Sentence(wordCount int) (string, error) {
	if err := checkCount("text.sentence", "wordCount", wordCount); err != nil {
		return "", err
	}
	return t.sentence(wordCount), nil
}

func (t Text) sentence(wordCount int) string {
	parts := make([]string, wordCount)
	for i := range parts {
		parts[i] = t.Word()
	}
	return capitalize(strings.Join(parts, " ")) + "."
}

// Paragraph joins sentenceCount default-length sentences with spaces.
func (t Text) Paragraph(sentenceCount int) (string, error) {
	if err := checkCount("text.paragraph", "sentenceCount", sentenceCount); err != nil {
		return "", err
	}
	parts := make([]string, sentenceCount)
	for i := range parts {
		parts[i] = t.sentence(DefaultSentenceWords)
	}
	return strings.Join(parts, " "), nil
}

// Title returns a page or card title.
func (t Text) Title() string { return t.f.pick(titles) }

// Heading returns a section heading.
func (t Text) Heading() string { return t.f.pick(headings) }

// Label returns a short field label.
func (t Text) Label() string { return t.f.pick(labels) }

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
