package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/utils/errors"
)

// AuthMiddleware validates the bearer token and tags the request context
// with the caller's identity: user id, role (admin|seller) and, for sellers,
// the location their token is bound to. Authentication mechanics beyond this
// role tagging live outside the core.
func AuthMiddleware(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			tokenStr := strings.TrimPrefix(auth, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, _ := claims["user_id"].(float64)
			role, _ := claims["role"].(string)
			if role != constant.RoleAdmin && role != constant.RoleSeller {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, uint64(userID))
			ctx = context.WithValue(ctx, constant.RoleKey, role)
			if locationID, ok := claims["location_id"].(float64); ok {
				ctx = context.WithValue(ctx, constant.LocationIDKey, uint64(locationID))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/healthz" {
		return true
	}

	return false
}
