package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"bassam-order-service/internal/auth"
)

type contextKey string

const adminContextKey contextKey = "adminContext"

// AdminContext identifies the logged-in manager for the request.
type AdminContext struct {
	Username string
}

func WithAdminContext(ctx context.Context, ac *AdminContext) context.Context {
	return context.WithValue(ctx, adminContextKey, ac)
}

func GetAdminContext(ctx context.Context) (*AdminContext, bool) {
	value := ctx.Value(adminContextKey)
	if value == nil {
		return nil, false
	}
	ac, ok := value.(*AdminContext)
	return ac, ok
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "UNAUTHORIZED",
		"message": message,
	})
}

// AdminAuth gates the admin API behind a valid manager token. The token
// comes from the Authorization header, or from a "token" query parameter
// for WebSocket clients that cannot set headers.
func AdminAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ParseBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				token = strings.TrimSpace(r.URL.Query().Get("token"))
			}

			claims, err := auth.VerifyAdminToken(token, jwtSecret)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			ctx := WithAdminContext(r.Context(), &AdminContext{Username: claims.Username})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
