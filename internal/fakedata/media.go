package fakedata

import (
	"net/url"
	"strconv"
)

// Media generates image URLs, icons and colours.
type Media struct{ f *Faker }

// Image returns a placeholder image URL for the given size. The random token
// defeats caching so repeated images differ.
func (m Media) Image(width, height int, category string) (string, error) {
	if width <= 0 || height <= 0 {
		return "", invalidArgument("media.image", "width and height must be positive", map[string]any{
			"width":  width,
			"height": height,
		})
	}
	return expand(m.f.imageURL, map[string]string{
		"width":    strconv.Itoa(width),
		"height":   strconv.Itoa(height),
		"category": url.QueryEscape(category),
		"token":    token(m.f.src, 10),
	}), nil
}

// Icon returns one emoji.
func (m Media) Icon() string { return m.f.pick(icons) }

// Color returns a hex colour from the palette.
func (m Media) Color() string { return m.f.pick(colors) }
