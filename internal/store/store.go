package store

import (
	"context"

	"github.com/hearthealth/heart-health-api/internal/domain"
)

// InsertResult is the write acknowledgment returned to clients after an
// insert. InsertedID carries the store-generated ObjectID (or the natural
// key for users) and serializes to its hex form.
type InsertResult struct {
	InsertedID any `json:"insertedId"`
}

// DeleteResult is the write acknowledgment for deletes. Deleting a key or
// id that does not exist is not an error; DeletedCount is simply zero.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// UserStore defines persistence for user documents, keyed by email rather
// than a surrogate id.
type UserStore interface {
	// List returns every user document in store iteration order.
	List(ctx context.Context) ([]domain.Document, error)

	// GetByEmail returns the user with the given email, or (nil, nil) when
	// no such user exists. Absence is a valid empty result, not an error.
	GetByEmail(ctx context.Context, email string) (domain.Document, error)

	// UpsertIfAbsent inserts doc under the given email with a server-set
	// creation timestamp, but only when no user with that email exists.
	// When one does, the stored document is returned unchanged and the
	// incoming payload is discarded: repeat sign-in is a no-op, never a
	// profile refresh. Exactly one of the two results is non-nil.
	UpsertIfAbsent(ctx context.Context, email string, doc domain.Document) (domain.Document, *InsertResult, error)

	// DeleteByEmail removes the user with the given email, if any.
	DeleteByEmail(ctx context.Context, email string) (*DeleteResult, error)
}

// CatalogStore defines persistence for the three structurally identical
// content collections (diagnostic tests, doctors, blog posts). Documents
// are keyed by store-generated ObjectIDs and are never updated in place;
// the only operations are create, read and delete.
type CatalogStore interface {
	// List returns every document in store iteration order.
	List(ctx context.Context) ([]domain.Document, error)

	// GetByID returns the document whose _id matches the given hex id, or
	// (nil, nil) when none exists. A malformed id fails with ErrInvalidID.
	GetByID(ctx context.Context, id string) (domain.Document, error)

	// Insert stores a new document and returns the generated id.
	Insert(ctx context.Context, doc domain.Document) (*InsertResult, error)

	// DeleteByID removes the document with the given hex id, if any.
	DeleteByID(ctx context.Context, id string) (*DeleteResult, error)
}

// AppointmentStore defines persistence for appointment bookings.
type AppointmentStore interface {
	// List returns appointments, optionally restricted to those whose
	// user_email equals userEmail. An empty userEmail lists everything.
	List(ctx context.Context, userEmail string) ([]domain.Document, error)

	// Insert stores a new appointment and returns the generated id.
	Insert(ctx context.Context, doc domain.Document) (*InsertResult, error)

	// DeleteByID removes the appointment with the given hex id, if any.
	DeleteByID(ctx context.Context, id string) (*DeleteResult, error)
}
