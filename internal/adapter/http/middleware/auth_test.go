package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequireAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(apiKey string) *gin.Engine {
		r := gin.New()
		r.GET("/api/admin/orders", RequireAPIKey(apiKey), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return r
	}

	cases := []struct {
		name   string
		apiKey string
		header string
		want   int
	}{
		{"no header", "k1", "", http.StatusUnauthorized},
		{"wrong scheme", "k1", "Basic k1", http.StatusUnauthorized},
		{"wrong key", "k1", "Bearer k2", http.StatusUnauthorized},
		{"empty configured key", "", "Bearer ", http.StatusUnauthorized},
		{"valid key", "k1", "Bearer k1", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(tc.apiKey)
			req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
