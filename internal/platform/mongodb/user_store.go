package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hearthealth/heart-health-api/internal/domain"
	"github.com/hearthealth/heart-health-api/internal/store"
)

// UserStore implements store.UserStore on the users collection. Users are
// keyed by their email address; the collection carries a unique index on
// email (see EnsureIndexes).
type UserStore struct {
	coll *mongo.Collection
}

// NewUserStore creates a MongoDB-backed user store from a connected client.
func NewUserStore(client *mongo.Client) *UserStore {
	return &UserStore{
		coll: client.Database(DatabaseName).Collection(UsersCollection),
	}
}

// Ensure UserStore implements store.UserStore.
var _ store.UserStore = (*UserStore)(nil)

// List implements store.UserStore.List.
func (s *UserStore) List(ctx context.Context) ([]domain.Document, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	docs := []domain.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return docs, nil
}

// GetByEmail implements store.UserStore.GetByEmail. Absence is reported as
// (nil, nil), not as an error.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (domain.Document, error) {
	var doc domain.Document
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return doc, nil
}

// UpsertIfAbsent implements store.UserStore.UpsertIfAbsent.
//
// The fast path is a read: if a user with this email already exists it is
// returned unchanged and the incoming payload is dropped. Otherwise the
// document is inserted with the email and a server-set creation timestamp
// in Unix milliseconds. Two concurrent first-time sign-ins can both see
// "absent"; the unique email index rejects the second insert and the
// duplicate-key branch re-reads the winner so both callers observe the
// same stored document.
func (s *UserStore) UpsertIfAbsent(
	ctx context.Context,
	email string,
	doc domain.Document,
) (domain.Document, *store.InsertResult, error) {
	existing, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return existing, nil, nil
	}

	insert := domain.Document{}
	for k, v := range doc {
		insert[k] = v
	}
	insert["email"] = email
	insert["timestamp"] = time.Now().UnixMilli()

	res, err := s.coll.InsertOne(ctx, insert)
	if mongo.IsDuplicateKeyError(err) {
		// Lost the race to a concurrent first sign-in. The winner's
		// document is the canonical one.
		winner, getErr := s.GetByEmail(ctx, email)
		if getErr != nil {
			return nil, nil, getErr
		}
		return winner, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return nil, &store.InsertResult{InsertedID: res.InsertedID}, nil
}

// DeleteByEmail implements store.UserStore.DeleteByEmail.
func (s *UserStore) DeleteByEmail(ctx context.Context, email string) (*store.DeleteResult, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return &store.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
