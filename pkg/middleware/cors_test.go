package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})
	h := Cors()(next)

	t.Run("Preflight não chega ao handler", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodOptions, "/api/kpi", nil)
		req.Header.Set("Origin", "https://qualquer.exemplo")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, called)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("Requisição normal recebe os headers", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/vendors", nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
