package middleware

import (
	"net/http"

	"github.com/gcet-hr/hr-backend-go/internal/domain/auth"
	"github.com/gcet-hr/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// SessionVerifier seeks the session token in the httpOnly cookie first, then
// falls back to a bearer Authorization header for non-browser clients.
func SessionVerifier(ja *jwtauth.JWTAuth, cookieName string) func(http.Handler) http.Handler {
	return jwtauth.Verify(ja, tokenFromCookie(cookieName), jwtauth.TokenFromHeader)
}

func tokenFromCookie(name string) func(r *http.Request) string {
	return func(r *http.Request) string {
		cookie, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return cookie.Value
	}
}

// AuthRequired rejects requests whose session token is absent, unverifiable,
// or not an access token. Absence and invalidity both yield a uniform 401.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, "No authentication token found")
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
