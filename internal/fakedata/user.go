package fakedata

import (
	"net/url"
	"strings"
)

// User generates people-shaped values.
type User struct{ f *Faker }

// Name returns "{first} {last}" drawn from independent tables.
func (u User) Name() string {
	return u.f.pick(firstNames) + " " + u.f.pick(lastNames)
}

// Email derives an address from a freshly generated name.
func (u User) Email() string {
	local := strings.ReplaceAll(strings.ToLower(u.Name()), " ", ".")
	return local + "@" + u.f.pick(emailDomains)
}

// Avatar returns an avatar URL for seed. An empty seed draws a fresh one, so
// the same non-empty seed always maps to the same URL.
func (u User) Avatar(seed string) string {
	if seed == "" {
		seed = token(u.f.src, 8)
	}
	return expand(u.f.avatarURL, map[string]string{"seed": url.QueryEscape(seed)})
}

// Role returns an account role.
func (u User) Role() string {
	return u.f.pick(roles)
}

// expand substitutes {name} placeholders in a URL template.
func expand(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
