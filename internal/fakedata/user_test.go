package fakedata

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var emailPattern = regexp.MustCompile(`^[a-z]+\.[a-z]+@(example\.com|test\.com|demo\.com|sample\.org)$`)

func TestEmailMatchesPattern(t *testing.T) {
	t.Parallel()

	user := seededFaker(42).User()
	for i := 0; i < 2000; i++ {
		email := user.Email()
		assert.Regexp(t, emailPattern, email)
	}
}

func TestNameHasFirstAndLast(t *testing.T) {
	t.Parallel()

	name := New(WithSource(script(0, 0.999))).User().Name()
	assert.Equal(t, firstNames[0]+" "+lastNames[len(lastNames)-1], name)
	assert.Len(t, strings.Fields(seededFaker(5).User().Name()), 2)
}

func TestAvatarSeed(t *testing.T) {
	t.Parallel()

	user := seededFaker(11).User()
	assert.Equal(t, "https://api.dicebear.com/7.x/avataaars/svg?seed=Jane+Doe", user.Avatar("Jane Doe"))
	assert.Equal(t, user.Avatar("abc"), user.Avatar("abc"))

	random := user.Avatar("")
	assert.Regexp(t, `seed=[0-9a-z]{8}$`, random)
}

func TestAvatarCustomTemplate(t *testing.T) {
	t.Parallel()

	f := New(WithSource(script(0)), WithAvatarURL("https://avatars.test/{seed}.png"))
	assert.Equal(t, "https://avatars.test/x.png", f.User().Avatar("x"))
}

func TestRoleFromTable(t *testing.T) {
	t.Parallel()

	assert.Contains(t, roles, seededFaker(2).User().Role())
}
