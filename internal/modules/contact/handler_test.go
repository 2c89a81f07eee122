package contact

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterRoutes(api, func(c *gin.Context) { c.Next() })
	return r
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSubmitRejectsInvalidPayload(t *testing.T) {
	r := testRouter(NewHandler(nil, nil))

	cases := []string{
		`{}`,
		`{"name":"Jane","email":"not-an-email","subject":"s","message":"m"}`,
		`{"name":"Jane","email":"jane@example.com","subject":"","message":"m"}`,
		`not json`,
	}
	for _, body := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest("POST", "/api/v1/contact", body))
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestReplyRequiresMessage(t *testing.T) {
	r := testRouter(NewHandler(nil, nil))

	for _, body := range []string{`{}`, `{"replyMessage":""}`, `{"replyMessage":"   "}`} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest("POST", "/api/v1/contact/reply/abc", body))
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		assert.Contains(t, w.Body.String(), "Reply message is required")
	}
}
