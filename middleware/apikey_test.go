package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newGuardedRouter(key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", ValidateAPIKey(key), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestValidateAPIKey(t *testing.T) {
	r := newGuardedRouter("super-secret")

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"matching key passes", "super-secret", http.StatusOK},
		{"wrong key rejected", "nope", http.StatusUnauthorized},
		{"missing key rejected", "", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tc.header != "" {
				req.Header.Set("X-API-KEY", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

// An empty configured key must not open the admin surface to requests
// that simply omit the header.
func TestValidateAPIKeyEmptyConfig(t *testing.T) {
	r := newGuardedRouter("")

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
