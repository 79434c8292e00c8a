package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// SessionValidator resolves a bearer token into an authenticated identity.
type SessionValidator interface {
	Authenticate(ctx context.Context, token string) (Identity, error)
}

// Identity represents the authenticated caller attached to the request context.
type Identity struct {
	UserID   int64
	Username string
}

type contextKeyIdentity struct{}

var ContextKeyIdentity = contextKeyIdentity{}

// GetIdentity retrieves the authenticated identity from the context.
// The zero Identity means the request did not pass through RequireSession.
func GetIdentity(ctx context.Context) Identity {
	identity, ok := ctx.Value(ContextKeyIdentity).(Identity)
	if !ok {
		return Identity{}
	}
	return identity
}

// BearerToken extracts the session token from the Authorization header.
// The "Bearer " prefix is optional: the browser client historically sent the
// raw token, so both forms are accepted.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return header
}

// RequireSession rejects requests without a valid session token before any
// handler logic runs, so failed auth can never leave partial side effects.
func RequireSession(validator SessionValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				unauthorized(w, r, logger, "missing session token")
				return
			}

			identity, err := validator.Authenticate(r.Context(), token)
			if err != nil {
				unauthorized(w, r, logger, "unknown or expired session token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, logger *slog.Logger, reason string) {
	logger.WarnContext(r.Context(), "unauthorized request",
		"reason", reason,
		"path", r.URL.Path,
		"request_id", GetRequestID(r.Context()),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","message":"not authenticated"}`))
}
