package blog

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	created := time.UnixMilli(1700000000000)
	suffix := fmt.Sprintf("-%d", created.UnixMilli())

	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world" + suffix},
		{"Go 1.24 Released!", "go-1-24-released" + suffix},
		{"  --- spaced ---  ", "spaced" + suffix},
		{"ALL CAPS TITLE", "all-caps-title" + suffix},
		{"päällekkäin", "päällekkäin" + suffix},
		{"", "post" + suffix},
		{"!!!", "post" + suffix},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title, created), "title %q", tc.title)
	}
}

func TestSlugifyDistinguishesSameTitle(t *testing.T) {
	a := Slugify("My Post", time.UnixMilli(1700000000000))
	b := Slugify("My Post", time.UnixMilli(1700000000001))
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "my-post-"))
}
