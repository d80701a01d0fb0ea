package middleware

import (
	"context"
	"net/http"

	"github.com/ostapdev/teamwheel/internal/api/apierr"
	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/services/auth"
	"github.com/ostapdev/teamwheel/internal/session"
)

type contextKey string

const accountContextKey contextKey = "account"

// Auth creates authentication middleware. The session cookie is
// resolved to its account, which is placed on the request context.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				apierr.WriteError(w, model.ErrNotAuthenticated)
				return
			}

			account, err := authService.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				apierr.WriteError(w, model.ErrNotAuthenticated)
				return
			}

			ctx := context.WithValue(r.Context(), accountContextKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAccount returns the authenticated account from the request context
func GetAccount(ctx context.Context) *model.Account {
	account, _ := ctx.Value(accountContextKey).(*model.Account)
	return account
}

// MustGetAccount returns the authenticated account or panics
func MustGetAccount(ctx context.Context) *model.Account {
	account := GetAccount(ctx)
	if account == nil {
		panic("no account in context - auth middleware not applied?")
	}
	return account
}
