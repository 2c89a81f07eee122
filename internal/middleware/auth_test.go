package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-space/core/internal/pkg/jwt"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", Auth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUserID(c), "email": CurrentUserEmail(c)})
	})
	r.GET("/public", OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authed": IsAuthenticated(c)})
	})
	return r
}

func TestAuthRejectsMissingToken(t *testing.T) {
	w := httptest.NewRecorder()
	authTestRouter().ServeHTTP(w, httptest.NewRequest("GET", "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer nope")
	w := httptest.NewRecorder()
	authTestRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthAcceptsValidToken(t *testing.T) {
	token, err := jwt.Sign("u1", "owner@example.com", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	authTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
	assert.Contains(t, w.Body.String(), "owner@example.com")
}

func TestOptionalAuthDoesNotBlock(t *testing.T) {
	w := httptest.NewRecorder()
	authTestRouter().ServeHTTP(w, httptest.NewRequest("GET", "/public", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authed":false`)
}

func TestOptionalAuthSetsIdentity(t *testing.T) {
	token, err := jwt.Sign("u1", "owner@example.com", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/public", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	authTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authed":true`)
}

func TestNormalizeToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer abc":   "abc",
		"  abc  ":      "abc",
		"":             "",
		"Bearer   abc": "abc",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeToken(raw), "raw %q", raw)
	}
}
