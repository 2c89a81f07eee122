package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipCachePath(t *testing.T) {
	patterns := []string{"/api/v1/blog/*", "/uploads/*", "/api/v1/readers"}

	assert.True(t, skipCachePath("/api/v1/blog/abc123", patterns))
	assert.True(t, skipCachePath("/uploads/profiles-x.png", patterns))
	assert.True(t, skipCachePath("/api/v1/readers", patterns))
	assert.False(t, skipCachePath("/api/v1/blog", patterns), "list route does not match the detail prefix")
	assert.False(t, skipCachePath("/api/v1/project", patterns))
	assert.False(t, skipCachePath("/api/v1/blog", nil))
}
