package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/sonerk/kelimeweb/auth"
	"github.com/sonerk/kelimeweb/models"
	"github.com/sonerk/kelimeweb/store"
)

type contextKey string

const userKey contextKey = "user"

// CookieName is the session cookie carrying the signed token.
const CookieName = "auth_token"

// Authenticator resolves the session cookie to an account and attaches it
// to the request context.
type Authenticator struct {
	Secret string
	Users  *store.UserStore
}

// RequireUser rejects requests without a valid session.
func (a *Authenticator) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		username, err := auth.ParseToken(a.Secret, cookie.Value)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		// The account may have been deleted since the token was minted;
		// the role is always taken from the store, never the token.
		user, err := a.Users.ByUsername(r.Context(), username)
		if errors.Is(err, store.ErrUserNotFound) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireAdmin additionally gates on the administrative capability.
func (a *Authenticator) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return a.RequireUser(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFrom(r.Context())
		if !ok || !user.IsAdmin() {
			http.Error(w, "Forbidden (admin only)", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFrom returns the authenticated account stored in the context.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// WithUser is a test hook for handler tests that bypass the middleware.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}
