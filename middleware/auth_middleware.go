package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/medrecall/medrecall-api/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// RequireAuth builds a middleware that rejects requests without a valid
// bearer token and stores the verified user id in the request context.
// A missing credential is 401; a presented-but-invalid one is 403.
func RequireAuth(secretKey []byte) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeMessage(w, http.StatusUnauthorized, "missing credentials")
				return
			}

			claims, err := auth.VerifyToken(token, secretKey)
			if err != nil {
				writeMessage(w, http.StatusForbidden, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// UserID returns the authenticated user id placed in the context by
// RequireAuth.
func UserID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(userIDKey).(uint)
	return id, ok
}

// WithUserID is a test hook for exercising handlers without the full
// token round trip.
func WithUserID(r *http.Request, id uint) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey, id))
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
