package middleware

import (
	"context"
	"net/http"
	"strings"

	"qna_forum/internal/common"
	"qna_forum/internal/common/security"
	"qna_forum/internal/domain/model"
	"qna_forum/internal/platform/denylist"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const IdentityCtxKey contextKey = "identity"

// Authenticator gates protected routes. It rejects missing, invalid, expired
// and revoked tokens before any handler logic runs, and attaches the caller's
// identity to the request context.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context()) // Extracts token from Authorization header

		if err != nil {
			if strings.Contains(err.Error(), "token not found") || token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			} else {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token: "+err.Error())
			}
			return
		}

		if token == nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		if jti := token.JwtID(); jti != "" {
			revoked, err := denylist.Store.IsRevoked(r.Context(), jti)
			if err != nil {
				common.RespondWithDomainError(w, err)
				return
			}
			if revoked {
				common.RespondWithError(w, http.StatusUnauthorized, "Token has been revoked")
				return
			}
		}

		userID, err := security.GetUserIDFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}
		username, err := security.GetUsernameFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}
		email, err := security.GetEmailFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}

		identity := model.UserSummary{UserID: userID, UserName: username, Email: email}
		ctx := context.WithValue(r.Context(), IdentityCtxKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentityFromContext returns the authenticated caller set by Authenticator.
func GetIdentityFromContext(ctx context.Context) (model.UserSummary, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(model.UserSummary)
	return identity, ok
}
