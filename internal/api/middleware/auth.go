package middleware

import (
	"context"
	"net/http"
	"strings"

	"civic_backend/internal/guard"
	"civic_backend/internal/model"
	"civic_backend/internal/service"
	"civic_backend/pkg/resp"
)

type identityContextKey struct{}

// IdentityFromContext - the validated caller identity stored by Authenticate.
func IdentityFromContext(ctx context.Context) (*model.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(*model.Identity)
	return identity, ok
}

// Authenticate - bearer token validation for API routes. Accepts the
// Authorization header first, the access_token cookie second. Fail closed:
// anything short of a valid token is a 401.
func Authenticate(authServ service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				if c, err := r.Cookie(guard.CookieAccessToken); err == nil && c.Value != "" {
					accessToken, ok = c.Value, true
				}
			}
			if !ok {
				resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			identity, err := authServ.Validate(r.Context(), accessToken)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOrganization - rejects callers without an active organization
// context. Must run after Authenticate.
func RequireOrganization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if identity.OrgID == nil {
			resp.WriteError(w, http.StatusForbidden, model.ErrMissingOrganization.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
