package middleware

import (
	"context"
	"strings"

	"github.com/timebank-lab/backend/pkg/authenticator"
	"github.com/timebank-lab/backend/pkg/errorx"
	"github.com/timebank-lab/backend/pkg/router"
	"github.com/timebank-lab/backend/pkg/xcontext"
)

type AuthVerifier struct {
	tokenEngine authenticator.TokenEngine
}

func NewAuthVerifier(tokenEngine authenticator.TokenEngine) *AuthVerifier {
	return &AuthVerifier{tokenEngine: tokenEngine}
}

// Middleware binds the subject of the bearer token as the request user id.
func (a *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		req := xcontext.HTTPRequest(ctx)
		if req == nil {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		auth, token, found := strings.Cut(req.Header.Get("Authorization"), " ")
		if !found || auth != "Bearer" || token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		externalID, err := a.tokenEngine.Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, externalID), nil
	}
}
