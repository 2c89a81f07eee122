package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromContext(t *testing.T) {
	cases := []struct {
		query string
		want  Query
	}{
		{"", Query{Page: 1, Limit: 5}},
		{"page=3&limit=10", Query{Page: 3, Limit: 10}},
		{"page=0&limit=0", Query{Page: 1, Limit: 5}},
		{"page=-2&limit=-7", Query{Page: 1, Limit: 5}},
		{"page=abc&limit=xyz", Query{Page: 1, Limit: 5}},
		{"limit=9999", Query{Page: 1, Limit: 100}},
	}
	for _, tc := range cases {
		got := FromContext(queryContext(t, tc.query))
		assert.Equal(t, tc.want, got, "query %q", tc.query)
	}
}

func TestMeta(t *testing.T) {
	meta := Meta(12, Query{Page: 2, Limit: 5})
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(12), meta.TotalCount)
	assert.Equal(t, 5, meta.Limit)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

func TestMetaBounds(t *testing.T) {
	first := Meta(12, Query{Page: 1, Limit: 5})
	assert.False(t, first.HasPrevPage)
	assert.True(t, first.HasNextPage)

	last := Meta(12, Query{Page: 3, Limit: 5})
	assert.True(t, last.HasPrevPage)
	assert.False(t, last.HasNextPage)

	empty := Meta(0, Query{Page: 1, Limit: 5})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNextPage)
	assert.False(t, empty.HasPrevPage)
}
