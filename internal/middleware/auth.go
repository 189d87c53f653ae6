package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ctxKey is a private type for context keys set by this package.
type ctxKey int

// subjectKey carries the authenticated subject (staff email) in the request context.
const subjectKey ctxKey = 0

// TokenVerifier checks a bearer token and returns the subject it was issued to.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// NewAuthHandler returns a middleware that requires a valid
// "Authorization: Bearer <token>" header on every request it wraps.
// Requests with a missing, malformed, or invalid token get a 401 and never
// reach the downstream handler.
func NewAuthHandler(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w)
				return
			}

			subject, err := verifier.Verify(token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Subject returns the authenticated subject stored by NewAuthHandler,
// or "" when the request did not pass through the auth middleware.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
