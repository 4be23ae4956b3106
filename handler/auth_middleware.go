package handler

import (
	"context"
	"net/http"
	"oft-transacts/common"
	"oft-transacts/model"
	"strings"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
	UserKey   contextKey = "user"
)

// TokenVerifier validates a raw bearer token against the identity
// provider and returns its verified claims.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, raw string) (*model.IDPClaims, error)
}

// UserResolver maps verified claims to an internal user record,
// provisioning one on first sight.
type UserResolver interface {
	ResolveUser(claims *model.IDPClaims) (*model.User, error)
}

// AuthMiddleware verifies the bearer token, resolves the internal user
// and stores it on the request context. Verification failures are always
// reported as one opaque 401.
func AuthMiddleware(verifier TokenVerifier, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				err := common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
				err.Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				err := common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil)
				err.Send(w)
				return
			}

			claims, err := verifier.VerifyToken(r.Context(), headerParts[1])
			if err != nil {
				appErr := common.NewAppError(http.StatusUnauthorized, "Invalid token", nil)
				appErr.Send(w)
				return
			}

			user, err := users.ResolveUser(claims)
			if err != nil {
				appErr := common.NewAppError(http.StatusInternalServerError, "Could not resolve user", err)
				appErr.Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
			ctx = context.WithValue(ctx, UserKey, user)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
