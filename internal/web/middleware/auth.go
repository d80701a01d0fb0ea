package middleware

import (
	"context"
	"net/http"

	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/services/auth"
	"github.com/ostapdev/teamwheel/internal/session"
)

type contextKey string

const accountContextKey contextKey = "account"

// GetAccount retrieves the authenticated account from the request
// context. Returns nil if nobody is logged in.
func GetAccount(ctx context.Context) *model.Account {
	account, _ := ctx.Value(accountContextKey).(*model.Account)
	return account
}

// Auth returns middleware that requires a logged-in account.
// Anonymous requests are redirected to the login page.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account := accountFromSession(r, authService)
			if account == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), accountContextKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns middleware that attempts authentication but
// doesn't require it
func OptionalAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account := accountFromSession(r, authService)
			ctx := context.WithValue(r.Context(), accountContextKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func accountFromSession(r *http.Request, authService *auth.Service) *model.Account {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return nil
	}

	account, err := authService.Authenticate(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}

	return account
}
