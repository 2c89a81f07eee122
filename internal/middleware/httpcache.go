package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix      = "folio:api-cache:"
	defaultCacheTTL     = 15 * time.Second
	defaultCacheMaxBody = 1 << 20
)

// HTTPCacheOptions tunes the anonymous-GET response cache.
type HTTPCacheOptions struct {
	TTL          time.Duration
	SkipPaths    []string
	MaxBodyBytes int
}

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

type cacheBodyWriter struct {
	gin.ResponseWriter
	body     []byte
	maxBytes int
	overflow bool
}

func (w *cacheBodyWriter) Write(data []byte) (int, error) {
	if !w.overflow {
		if len(w.body)+len(data) > w.maxBytes {
			w.overflow = true
		} else {
			w.body = append(w.body, data...)
		}
	}
	return w.ResponseWriter.Write(data)
}

// HTTPCache serves unauthenticated GET responses from Redis for a short
// TTL. Routes with read side effects belong in SkipPaths: a cached hit
// never reaches the handler.
func HTTPCache(rdb *redis.Client, opts HTTPCacheOptions) gin.HandlerFunc {
	if opts.TTL <= 0 {
		opts.TTL = defaultCacheTTL
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultCacheMaxBody
	}

	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method != http.MethodGet || IsAuthenticated(c) {
			c.Next()
			return
		}
		if skipCachePath(c.Request.URL.Path, opts.SkipPaths) {
			c.Next()
			return
		}

		key := cacheKeyPrefix + c.Request.URL.RequestURI()
		if raw, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil && len(raw) > 0 {
			var payload cachedResponse
			if err := json.Unmarshal(raw, &payload); err == nil && payload.Status > 0 {
				c.Header("Cache-Control", "public, max-age="+strconv.Itoa(int(opts.TTL/time.Second)))
				c.Data(payload.Status, payload.ContentType, payload.Body)
				c.Abort()
				return
			}
		}

		buffer := &cacheBodyWriter{ResponseWriter: c.Writer, maxBytes: opts.MaxBodyBytes}
		c.Writer = buffer
		c.Next()

		status := c.Writer.Status()
		if status != http.StatusOK || buffer.overflow || len(buffer.body) == 0 {
			return
		}

		raw, err := json.Marshal(cachedResponse{
			Status:      status,
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        buffer.body,
		})
		if err != nil {
			return
		}
		_ = rdb.Set(c.Request.Context(), key, raw, opts.TTL).Err()
	}
}

func skipCachePath(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if strings.HasSuffix(pattern, "*") {
			if strings.HasPrefix(path, strings.TrimSuffix(pattern, "*")) {
				return true
			}
			continue
		}
		if path == pattern {
			return true
		}
	}
	return false
}
