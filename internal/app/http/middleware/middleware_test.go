package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func TestSanitizeInput(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeInput())
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", body)
	})

	body := `{"name":" <b>Ada</b> ","tags":["<i>go</i>"],"nested":{"x":"<script>bad()</script>ok"},"n":3}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Ada","tags":["go"],"nested":{"x":"ok"},"n":3}`, w.Body.String())
}

func TestSanitizeValue_LeavesEntitiesUnescaped(t *testing.T) {
	tests := map[string]string{
		"O'Brien":              "O'Brien",
		"Q&A":                  "Q&A",
		`"quoted"`:             `"quoted"`,
		"<b>bold</b> & more": "bold & more",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeValue(in), in)
	}
}

func TestSanitizeInput_Malformed(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeInput())
	r.POST("/echo", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireAPIKey(t *testing.T) {
	r := gin.New()
	r.Use(RequireAPIKey("k1"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for key, want := range map[string]int{"k1": http.StatusNoContent, "k2": http.StatusUnauthorized, "": http.StatusUnauthorized} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if key != "" {
			req.Header.Set(APIKeyHeader, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, key)
	}
}

func TestRequestID_Propagates(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRequestID)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc", w.Body.String())
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}
