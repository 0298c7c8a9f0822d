// Package middleware holds the router middleware: admin authentication and
// request logging.
package middleware

import (
	"net/http"
	"strings"

	"github.com/AbhijeetAayush/My-Portfolio/pkg/auth"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/common"
)

// Authenticate verifies the Bearer access token and puts the admin email
// on the request context.
func Authenticate(tokens *auth.TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				authHeader = r.Header.Get("authorization")
			}
			if authHeader == "" {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header missing")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization format")
				return
			}

			claims, err := tokens.Verify(strings.TrimSpace(parts[1]), auth.TokenTypeAccess)
			if err != nil {
				switch err {
				case auth.ErrExpiredToken:
					common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Token has expired")
				case auth.ErrWrongTokenType:
					common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token type")
				default:
					common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), claims.Email)))
		})
	}
}
