package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campaign-site-backend/pkg/config"
	"campaign-site-backend/pkg/models"
	"campaign-site-backend/pkg/utils"
)

// ContextKey is the type for values stored in the request context.
type ContextKey string

const (
	// AdminContextKey holds the authenticated admin user.
	AdminContextKey ContextKey = "admin"
)

// AdminGuard is the single gatekeeping layer for the admin API. Every
// route under /api/admin passes through it exactly once; handlers read
// the authenticated admin from the context and never re-check sessions
// themselves.
func AdminGuard(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.WriteUnauthorizedResponse(w, "Missing authorization header")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				utils.WriteUnauthorizedResponse(w, "Invalid authorization header format")
				return
			}

			token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil {
				utils.WriteUnauthorizedResponse(w, "Invalid token: "+err.Error())
				return
			}

			if !token.Valid {
				utils.WriteUnauthorizedResponse(w, "Invalid token")
				return
			}

			claims, ok := token.Claims.(*models.TokenClaims)
			if !ok {
				utils.WriteUnauthorizedResponse(w, "Invalid token claims")
				return
			}

			// Refresh tokens never grant admin access
			if claims.Type != "access" {
				utils.WriteUnauthorizedResponse(w, "Invalid token type")
				return
			}

			if time.Now().Unix() > claims.Exp {
				utils.WriteUnauthorizedResponse(w, "Token expired")
				return
			}

			admin := &models.AdminUser{
				ID:    claims.UserID,
				Email: claims.Email,
			}

			ctx := context.WithValue(r.Context(), AdminContextKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminFromContext returns the authenticated admin, if any.
func GetAdminFromContext(ctx context.Context) (*models.AdminUser, bool) {
	admin, ok := ctx.Value(AdminContextKey).(*models.AdminUser)
	return admin, ok
}

// RequireAdmin returns the authenticated admin or an error.
func RequireAdmin(ctx context.Context) (*models.AdminUser, error) {
	admin, ok := GetAdminFromContext(ctx)
	if !ok || admin == nil {
		return nil, fmt.Errorf("admin not authenticated")
	}
	return admin, nil
}
