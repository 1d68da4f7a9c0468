package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/auth"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/response"
)

// TokenCookie is the name of the HTTP-only cookie carrying the session JWT.
const TokenCookie = "token"

type userCtxKey struct{}

// Authenticate returns middleware that resolves the session credential
// (cookie first, then Authorization bearer header) to the stored user record
// and injects it into the request context. It never blocks the request:
// missing or invalid credentials leave the request unauthenticated so public
// endpoints keep working. Use RequireAuth to gate protected routes.
func Authenticate(db *gorm.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ValidateToken(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			var user models.User
			err = db.First(&user, claims.UserID).Error
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					response.Error(w, http.StatusInternalServerError, "Internal Server Error")
					return
				}
				// Token for a deleted account: treat as unauthenticated.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey{}, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth blocks unauthenticated requests with 401.
// Authenticate must be wired earlier in the chain.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromCtx(r); !ok {
			response.Error(w, http.StatusUnauthorized, "Authentication required. Please log in.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromCtx returns the authenticated user attached by Authenticate.
func UserFromCtx(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userCtxKey{}).(*models.User)
	return user, ok
}

// UserIDFromCtx returns the authenticated user's ID.
func UserIDFromCtx(r *http.Request) (uint, bool) {
	user, ok := UserFromCtx(r)
	if !ok {
		return 0, false
	}
	return user.ID, true
}

// RoleFromCtx returns the authenticated user's role.
func RoleFromCtx(r *http.Request) (string, bool) {
	user, ok := UserFromCtx(r)
	if !ok {
		return "", false
	}
	return user.Role, true
}

func extractToken(r *http.Request) string {
	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "" {
		return c.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
