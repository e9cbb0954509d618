package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/hearthealth/heart-health-api/internal/api/shared"
	"github.com/hearthealth/heart-health-api/internal/platform/logger"
	"github.com/hearthealth/heart-health-api/internal/service/auth"
)

// SessionCookieName is the cookie the session token travels in. The name
// is a contract with the client application.
const SessionCookieName = "token"

// AuthMiddleware authenticates requests from the session cookie.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate verifies the session token from the request's cookie and
// adds the decoded claim to the request context. Requests without a valid
// token are rejected with 401 and never reach the downstream handler; the
// failure cause is logged for operators. There is no retry path, the
// caller must re-authenticate.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			log.Debug("rejecting request without session cookie",
				"path", r.URL.Path,
				"error", auth.ErrMissingToken.Error())
			shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized access")
			return
		}

		claim, err := m.tokenService.VerifyToken(r.Context(), cookie.Value)
		if err != nil {
			cause := "invalid"
			if errors.Is(err, auth.ErrExpiredToken) {
				cause = "expired"
			}
			log.Warn("rejecting request with unusable session token",
				"path", r.URL.Path,
				"cause", cause,
				"error", err.Error())
			shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized access")
			return
		}

		ctx := context.WithValue(r.Context(), shared.ClaimContextKey, claim)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaim extracts the decoded session claim from the request context.
// Returns the claim and a boolean indicating if it was found.
func GetClaim(r *http.Request) (auth.Claim, bool) {
	claim, ok := r.Context().Value(shared.ClaimContextKey).(auth.Claim)
	return claim, ok
}
