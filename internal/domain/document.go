// Package domain holds the data model shared by the stores and the HTTP
// layer. Unlike a typical service there are no rich entity types here:
// every collection stores opaque client-supplied documents, so the model
// is a single schemaless Document type with accessors for the few keys
// the server itself cares about.
package domain

// Document is a schemaless record stored in one of the application's
// collections. The client owns the shape of every document it submits;
// the server never validates fields beyond the keys it sets itself
// (the user email and creation timestamp).
//
// Collections and their reserved keys:
//   - users: "email" (natural key, unique index), "timestamp" (Unix millis,
//     set on first insert)
//   - All_Tests, Doctors, Blogs: "_id" only (store-generated)
//   - Appoints: "_id" plus the soft "user_email" reference used for
//     per-user filtering. Nothing enforces that it matches a users document.
type Document map[string]any

// Email returns the document's email field, or "" when absent or not a string.
func (d Document) Email() string {
	email, _ := d["email"].(string)
	return email
}

// UserEmail returns the appointment correlation field, or "" when absent.
func (d Document) UserEmail() string {
	email, _ := d["user_email"].(string)
	return email
}
