package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/corerestore/internal/platform/logging"
)

type userContextKey struct{}

// failure is how one verification error is answered and logged.
type failure struct {
	err    error
	reason string
}

// failures is ordered; the first match wins.
var failures = []failure{
	{ErrTokenExpired, "token_expired"},
	{ErrTokenRevoked, "token_revoked"},
	{ErrUserDisabled, "user_disabled"},
	{ErrCertificateFetch, "certificate_fetch_failed"},
	{ErrInvalidToken, "invalid_token"},
}

func reasonFor(err error) string {
	for _, f := range failures {
		if errors.Is(err, f.err) {
			return f.reason
		}
	}
	return "unknown"
}

// NewAuthMiddleware authenticates operations that declare a security
// requirement. The verified user is stored in the context and its uid is added
// to the request logger so every later line of the request can be attributed.
func NewAuthMiddleware(api huma.API, verifier Verifier) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		token, err := ExtractBearerToken(ctx.Header("Authorization"))
		if err != nil {
			applog.LogWarn(ctx.Context(), "auth failed", zap.String("reason", "no_token"))
			challenge(api, ctx, "missing or invalid authorization header")
			return
		}

		user, err := verifier.Verify(ctx.Context(), token)
		if err != nil {
			applog.LogWarn(ctx.Context(), "auth failed", zap.String("reason", reasonFor(err)))
			if errors.Is(err, ErrCertificateFetch) {
				ctx.SetHeader("Retry-After", "30")
				_ = huma.WriteErr(api, ctx, http.StatusServiceUnavailable,
					"authentication service temporarily unavailable")
				return
			}
			challenge(api, ctx, "invalid or expired token")
			return
		}

		ctx = huma.WithContext(ctx, applog.WithFields(ctx.Context(), zap.String("uid", user.UID)))
		next(huma.WithValue(ctx, userContextKey{}, user))
	}
}

func challenge(api huma.API, ctx huma.Context, msg string) {
	ctx.SetHeader("WWW-Authenticate", "Bearer")
	_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, msg)
}

// UserFromContext returns the authenticated user, or nil.
func UserFromContext(ctx context.Context) *FirebaseUser {
	user, _ := ctx.Value(userContextKey{}).(*FirebaseUser)
	return user
}
