// handler/auth_middleware_test.go
package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"oft-transacts/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	claims *model.IDPClaims
	err    error
}

func (s *stubVerifier) VerifyToken(ctx context.Context, raw string) (*model.IDPClaims, error) {
	return s.claims, s.err
}

type stubResolver struct {
	user *model.User
	err  error
}

func (s *stubResolver) ResolveUser(claims *model.IDPClaims) (*model.User, error) {
	return s.user, s.err
}

func TestAuthMiddleware(t *testing.T) {
	okVerifier := &stubVerifier{claims: &model.IDPClaims{Email: "jane@example.com"}}
	okResolver := &stubResolver{user: &model.User{ID: 7, Email: "jane@example.com"}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(UserIDKey).(int)
		user, _ := r.Context().Value(UserKey).(*model.User)
		assert.Equal(t, 7, userID)
		assert.Equal(t, "jane@example.com", user.Email)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid bearer token reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/accounts", nil)
		req.Header.Set("Authorization", "Bearer token123")
		rr := httptest.NewRecorder()

		AuthMiddleware(okVerifier, okResolver)(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/accounts", nil)
		rr := httptest.NewRecorder()

		AuthMiddleware(okVerifier, okResolver)(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/accounts", nil)
		req.Header.Set("Authorization", "token123")
		rr := httptest.NewRecorder()

		AuthMiddleware(okVerifier, okResolver)(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejected token gets one opaque message", func(t *testing.T) {
		verifier := &stubVerifier{err: errors.New("expired")}
		req := httptest.NewRequest("GET", "/accounts", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		rr := httptest.NewRecorder()

		AuthMiddleware(verifier, okResolver)(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"code":401,"message":"Invalid token"}`, rr.Body.String())
	})

	t.Run("resolver failure is a server error", func(t *testing.T) {
		resolver := &stubResolver{err: errors.New("db down")}
		req := httptest.NewRequest("GET", "/accounts", nil)
		req.Header.Set("Authorization", "Bearer token123")
		rr := httptest.NewRecorder()

		AuthMiddleware(okVerifier, resolver)(next).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
