package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/transkotakita/payroll-backend-go/internal/domain/auth"
	"github.com/transkotakita/payroll-backend-go/internal/handler/http/response"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/jwt"
)

// AuthRequired admits only holders of a valid, unrevoked admin access token.
// It runs after jwtauth.Verifier, which parses the Authorization header.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
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

			if raw := jwtauth.TokenFromHeader(r); jwtService.IsTokenRevoked(raw) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
