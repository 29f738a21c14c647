// Package guard authenticates bearer tokens and enforces roles.
package guard

import (
	"net/http"
	"strings"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/auth"
	"github.com/MrJamesThe3rd/estate/internal/http/respond"
	"github.com/MrJamesThe3rd/estate/internal/resident"
)

type Authenticator interface {
	Authenticate(accessToken string) (auth.Principal, error)
}

// BearerToken returns the token of an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

// Authenticate rejects requests without a valid access token and stores the
// caller in the request context.
func Authenticate(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				respond.Error(w, r, apperr.ErrUnauthorized)
				return
			}

			p, err := a.Authenticate(token)
			if err != nil {
				respond.Error(w, r, apperr.Wrap(apperr.CodeUnauthorized, err))
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireRole admits authenticated callers holding one of roles.
func RequireRole(roles ...resident.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := auth.PrincipalFrom(r.Context())
			if !ok {
				respond.Error(w, r, apperr.ErrUnauthorized)
				return
			}

			for _, role := range roles {
				if p.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			respond.Error(w, r, apperr.ErrForbidden)
		})
	}
}
