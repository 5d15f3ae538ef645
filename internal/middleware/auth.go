package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"ticket-tracker/internal/models"
	"ticket-tracker/internal/services"
)

type contextKey string

const (
	// UserContextKey is the request-context key holding the
	// authenticated user
	UserContextKey contextKey = "user"
)

// AuthMiddleware provides bearer-token authentication
type AuthMiddleware struct {
	authService services.AuthServiceInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authService services.AuthServiceInterface) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth rejects requests without a valid bearer token and loads
// the token's user into the request context
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeAuthError(w, models.NewUnauthenticatedError("authorization header is required"))
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeAuthError(w, models.NewUnauthenticatedError("authorization header must be a bearer token"))
			return
		}

		user, err := m.authService.ValidateToken(tokenString)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext retrieves the authenticated user from the request
// context, nil when absent
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

func writeAuthError(w http.ResponseWriter, err error) {
	status, body := models.NewErrorResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
