package store

import "errors"

// Common store errors used across all store implementations.
//
// Absent documents are deliberately NOT represented as errors here: the
// read operations return (nil, nil) because "not found" is a valid empty
// response on this API, never a 404.
var (
	// ErrInvalidID is returned when a caller-supplied id is not a valid
	// 24-character hex ObjectID and can therefore never match a document.
	ErrInvalidID = errors.New("invalid document id")
)
