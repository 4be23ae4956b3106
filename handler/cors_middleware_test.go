// handler/cors_middleware_test.go
package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := CORSMiddleware([]string{"https://app.example.com"})(next)

	t.Run("allowed origin gets CORS headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/accounts", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rr := httptest.NewRecorder()

		middleware.ServeHTTP(rr, req)

		assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unlisted origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/accounts", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rr := httptest.NewRecorder()

		middleware.ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight is answered directly", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/accounts", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rr := httptest.NewRecorder()

		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight from an unlisted origin is rejected", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/accounts", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		req.Header.Set("Access-Control-Request-Method", "GET")
		rr := httptest.NewRecorder()

		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("non-CORS OPTIONS passes through", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/accounts", nil)
		rr := httptest.NewRecorder()

		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := SecurityHeadersMiddleware("https://idp.example.com")(next)

	t.Run("standard policy", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/accounts", nil)
		rr := httptest.NewRecorder()

		middleware.ServeHTTP(rr, req)

		csp := rr.Header().Get("Content-Security-Policy")
		assert.Contains(t, csp, "connect-src 'self' https://idp.example.com")
		assert.NotContains(t, csp, "cdn.jsdelivr.net")
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "no-referrer", rr.Header().Get("Referrer-Policy"))
	})

	t.Run("relaxed policy for the docs UI", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/swagger/index.html", nil)
		rr := httptest.NewRecorder()

		middleware.ServeHTTP(rr, req)

		assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "cdn.jsdelivr.net")
	})
}
