package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed, carries a bad
	// signature, or is otherwise unusable. Every verification failure is
	// an ErrInvalidToken.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrExpiredToken indicates the token's embedded expiry has passed.
	// It wraps ErrInvalidToken so callers that only care about validity
	// can match the one sentinel.
	ErrExpiredToken = fmt.Errorf("%w: expired", ErrInvalidToken)

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("session token is missing")
)
