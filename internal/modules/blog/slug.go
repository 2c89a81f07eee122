package blog

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Slugify builds a URL-safe identifier from a post title. Runs of
// non-alphanumeric characters collapse into single hyphens and the
// post's creation timestamp is appended, so two posts sharing a title
// still get distinct slugs without a lookup-and-retry loop.
func Slugify(title string, created time.Time) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "post"
	}
	return slug + "-" + strconv.FormatInt(created.UnixMilli(), 10)
}
