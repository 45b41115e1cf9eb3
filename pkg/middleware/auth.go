package middleware

import (
	"net/http"
	"strings"

	"github.com/priyankmodi/storefront/pkg/auth"
	"github.com/priyankmodi/storefront/pkg/response"
)

// Auth validates the bearer token and stores the caller's identity in the
// request context. Routes behind it can rely on UserIDFromCtx/RoleFromCtx.
func Auth(issuer *auth.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" || token == header {
				response.Unauthorized(w)
				return
			}

			claims, err := issuer.Validate(token)
			if err != nil {
				response.Unauthorized(w)
				return
			}

			ctx := WithIdentity(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
