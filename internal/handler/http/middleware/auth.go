package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/cmlabs-hris/workforce/internal/domain/credential"
	"github.com/cmlabs-hris/workforce/internal/domain/record"
	"github.com/cmlabs-hris/workforce/internal/handler/http/response"
	"github.com/cmlabs-hris/workforce/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	callerKey    contextKey = "caller"
	sessionIDKey contextKey = "session_id"
)

// SessionVerifier checks that the auth session behind a token is still live.
type SessionVerifier interface {
	VerifySession(ctx context.Context, userID, sessionID string) error
}

func AuthRequired(ja *jwtauth.JWTAuth, sessions SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, jwt.ErrInvalidToken)
				return
			}

			userID, sessionID, err := jwt.Claims(claims)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if err := sessions.VerifySession(r.Context(), userID, sessionID); err != nil {
				if errors.Is(err, credential.ErrSessionRevoked) {
					response.HandleError(w, err)
					return
				}
				response.InternalServerError(w, "failed to verify session")
				return
			}

			ctx := context.WithValue(r.Context(), callerKey, record.Caller{UserID: userID})
			ctx = context.WithValue(ctx, sessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// CallerFromContext returns the caller stored by AuthRequired.
func CallerFromContext(ctx context.Context) (record.Caller, bool) {
	caller, ok := ctx.Value(callerKey).(record.Caller)
	return caller, ok
}

// SessionIDFromContext returns the auth session id stored by AuthRequired.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}
