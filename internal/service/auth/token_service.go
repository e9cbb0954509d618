// Package auth provides the session token codec: creation and verification
// of signed, time-limited tokens carrying a caller-supplied identity claim.
// Tokens are never persisted server-side; validity is purely signature plus
// expiry, so there is no revocation list and a signature-valid claim is
// trusted as-is.
package auth

import (
	"context"
	"time"
)

// DefaultTokenLifetime is how long an issued session token stays valid.
// The cookie carrying the token sets no max-age of its own; this embedded
// expiry is the real session boundary.
const DefaultTokenLifetime = 365 * 24 * time.Hour

// Claim is the identity payload embedded in a session token. Its shape is
// caller-supplied and not schema-checked; clients conventionally include
// an email and sometimes a role.
type Claim = map[string]any

// TokenService defines operations for issuing and verifying session tokens.
type TokenService interface {
	// IssueToken creates a signed token embedding the given claim with an
	// expiration DefaultTokenLifetime from now. The claim is copied as-is;
	// no fields are required or validated.
	IssueToken(ctx context.Context, claim Claim) (string, error)

	// VerifyToken checks the signature and expiry of the given token string
	// and returns the embedded claim (including the registered exp/iat/jti
	// fields). Malformed tokens, bad signatures and expired tokens all fail
	// with ErrInvalidToken; expiry is additionally identifiable as
	// ErrExpiredToken for operator logs.
	VerifyToken(ctx context.Context, token string) (Claim, error)
}
