package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(nil).Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != 200 {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestReadyz(t *testing.T) {
	cases := []struct {
		name string
		ping func() error
		want int
	}{
		{"remote reachable", func() error { return nil }, 200},
		{"remote down", func() error { return errors.New("refused") }, 503},
		{"no probe configured", nil, 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			NewHealthHandler(tc.ping).Register(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			if w.Code != tc.want {
				t.Fatalf("code=%d, want %d", w.Code, tc.want)
			}
		})
	}
}
