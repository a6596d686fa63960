package middleware

import (
	"context"
	"net/http"
	"strings"

	"hireboard/internal/common"
	"hireboard/internal/http/response"
	"hireboard/internal/security"
)

type contextKey string

const (
	ContextUserIDKey contextKey = "user_id"
	ContextRoleKey   contextKey = "role"
)

type AuthMiddleware struct {
	jwt *security.JWTProvider
}

func NewAuthMiddleware(jwt *security.JWTProvider) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		claims, err := m.jwt.Parse(parts[1])
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid token", err))
			return
		}
		userID, err := common.ParseUUID(claims.UserID)
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid user id", err))
			return
		}
		ctx := context.WithValue(r.Context(), ContextUserIDKey, userID)
		ctx = context.WithValue(ctx, ContextRoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole admits requests whose token carries one of roles.
func RequireRole(roles ...security.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			activeRole, ok := RoleFromContext(r.Context())
			if !ok || activeRole == "" {
				response.Error(w, common.NewError(common.CodeForbidden, "role not found", nil))
				return
			}
			for _, role := range roles {
				if activeRole == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
		})
	}
}

func UserIDFromContext(ctx context.Context) (common.UUID, bool) {
	id, ok := ctx.Value(ContextUserIDKey).(common.UUID)
	return id, ok
}

func RoleFromContext(ctx context.Context) (security.Role, bool) {
	role, ok := ctx.Value(ContextRoleKey).(security.Role)
	return role, ok
}
