package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hearthealth/heart-health-api/internal/domain"
	"github.com/hearthealth/heart-health-api/internal/store"
)

// CatalogStore implements store.CatalogStore for one of the three content
// collections (All_Tests, Doctors, Blogs). The three collections share
// identical semantics and differ only in name, so a single implementation
// is instantiated once per collection.
type CatalogStore struct {
	coll *mongo.Collection
}

// NewCatalogStore creates a MongoDB-backed catalog store for the named
// collection.
func NewCatalogStore(client *mongo.Client, collection string) *CatalogStore {
	return &CatalogStore{
		coll: client.Database(DatabaseName).Collection(collection),
	}
}

// Ensure CatalogStore implements store.CatalogStore.
var _ store.CatalogStore = (*CatalogStore)(nil)

// List implements store.CatalogStore.List.
func (s *CatalogStore) List(ctx context.Context) ([]domain.Document, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.coll.Name(), err)
	}

	docs := []domain.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.coll.Name(), err)
	}
	return docs, nil
}

// GetByID implements store.CatalogStore.GetByID. Absence is reported as
// (nil, nil), not as an error.
func (s *CatalogStore) GetByID(ctx context.Context, id string) (domain.Document, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}

	var doc domain.Document
	err = s.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s document: %w", s.coll.Name(), err)
	}
	return doc, nil
}

// Insert implements store.CatalogStore.Insert.
func (s *CatalogStore) Insert(ctx context.Context, doc domain.Document) (*store.InsertResult, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", s.coll.Name(), err)
	}
	return &store.InsertResult{InsertedID: res.InsertedID}, nil
}

// DeleteByID implements store.CatalogStore.DeleteByID.
func (s *CatalogStore) DeleteByID(ctx context.Context, id string) (*store.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete from %s: %w", s.coll.Name(), err)
	}
	return &store.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
