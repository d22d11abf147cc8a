package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/hub-fulfillment/application/user"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	utilsContext "github.com/muhammadheryan/hub-fulfillment/utils/context"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"go.uber.org/zap"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// It allows public endpoints (like /login, /register, /swagger/) without token.
// Internal endpoints carry their own API key check.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			session, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Debug("[AuthMiddleware] rejected token", zap.Error(err))
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, session.UserID)
			ctx = context.WithValue(ctx, constant.UserRoleKey, session.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles admits the listed roles. ADMIN is always admitted.
func RequireRoles(roles ...constant.UserRole) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			role, ok := utilsContext.GetUserRole(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			if role == constant.UserRoleAdmin {
				next(w, r)
				return
			}
			for _, allowed := range roles {
				if role == allowed {
					next(w, r)
					return
				}
			}
			writeError(w, errors.SetCustomError(constant.ErrForbidden))
		}
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" || path == "/register" || path == "/health" {
		return true
	}

	return false
}
