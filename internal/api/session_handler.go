package api

import (
	"net/http"

	"github.com/hearthealth/heart-health-api/internal/api/middleware"
	"github.com/hearthealth/heart-health-api/internal/api/shared"
	"github.com/hearthealth/heart-health-api/internal/platform/logger"
	"github.com/hearthealth/heart-health-api/internal/service/auth"
)

// SessionHandler handles session issuance and teardown.
//
// Issuance performs no credential check: the caller-supplied claim is
// signed as-is. Trust is delegated entirely to the client supplying a
// truthful claim; this mirrors the deployed contract.
type SessionHandler struct {
	tokenService auth.TokenService
	production   bool
}

// NewSessionHandler creates a new SessionHandler. production selects the
// cross-site cookie attributes.
func NewSessionHandler(tokenService auth.TokenService, production bool) *SessionHandler {
	return &SessionHandler{
		tokenService: tokenService,
		production:   production,
	}
}

// IssueToken handles POST /jwt. The request body is the identity claim to
// embed; the signed token is set as an HTTP-only cookie and the response
// is always {"success":true}.
func (h *SessionHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var claim auth.Claim
	if err := shared.DecodeJSON(r, &claim); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := h.tokenService.IssueToken(r.Context(), claim)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to issue session token", err)
		return
	}

	log.Debug("issued session token", "email", claim["email"])

	http.SetCookie(w, h.sessionCookie(token, 0))
	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// Logout handles GET /logout. The session cookie is cleared
// unconditionally; success is reported even when no session existed.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// sessionCookie builds the session cookie with environment-dependent
// attributes. Production serves the frontend from another origin, so the
// cookie must be Secure with SameSite=None for credentialed cross-site
// requests; development stays strict. The cookie itself carries no
// max-age when issuing (maxAge 0): the token's embedded expiry is the
// real session boundary.
func (h *SessionHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   maxAge,
		Secure:   h.production,
		SameSite: http.SameSiteStrictMode,
	}
	if h.production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
