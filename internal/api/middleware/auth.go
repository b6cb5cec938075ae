package middleware

import (
	"context"
	"net/http"

	"github.com/Debanga-06/Expense-Tracker/internal/session"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// RequireSession rejects requests without a valid session cookie with a
// uniform 401 and puts the resolved identity on the request context.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := resolve(store, r)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSession resolves the session when present but lets anonymous requests
// through. Used by endpoints that degrade gracefully for logged-out callers.
func WithSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity, ok := resolve(store, r); ok {
				r = r.WithContext(context.WithValue(r.Context(), IdentityKey, identity))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func resolve(store *session.Store, r *http.Request) (session.Identity, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return session.Identity{}, false
	}
	return store.Resolve(cookie.Value)
}

// GetIdentity extracts the resolved session identity from the context.
func GetIdentity(ctx context.Context) (session.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(session.Identity)
	return identity, ok
}
