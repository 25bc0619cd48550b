package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chei-t/spice.com/internal/auth"
	"github.com/chei-t/spice.com/internal/user"
)

type ctxKey string

const (
	userKey      ctxKey = "user"
	requestIDKey ctxKey = "request_id"
)

// UserLoader resolves a token subject into a full user record.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// Authenticate parses the Bearer token, loads the user and stores it in the
// request context. Requests without a valid token get a 401.
func Authenticate(tokens *auth.TokenManager, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondError(w, http.StatusUnauthorized, "unauthorized", "not authorized, no token")
				return
			}

			userID, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondError(w, http.StatusUnauthorized, "unauthorized", "not authorized, invalid token")
				return
			}

			u, err := users.GetByID(r.Context(), userID)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "unauthorized", "not authorized, user not found")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles rejects authenticated users whose role is not in the allowed
// set. Must run after Authenticate.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := currentUser(r.Context())
			if u == nil {
				respondError(w, http.StatusUnauthorized, "unauthorized", "not authorized, user not found")
				return
			}
			if !allowed[u.Role] {
				respondError(w, http.StatusForbidden, "permission_denied", "access denied: insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%d", time.Now().UnixNano())
		}

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func currentUser(ctx context.Context) *user.User {
	if u, ok := ctx.Value(userKey).(*user.User); ok {
		return u
	}
	return nil
}

func getRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
