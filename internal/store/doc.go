// Package store defines the persistence interfaces for the application's
// five collections, along with the write-acknowledgment types their
// implementations return. Concrete MongoDB-backed implementations live in
// internal/platform/mongodb; handlers depend only on these interfaces so
// tests can substitute in-memory fakes.
package store
