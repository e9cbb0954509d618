package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hearthealth/heart-health-api/internal/domain"
	"github.com/hearthealth/heart-health-api/internal/store"
)

// AppointmentStore implements store.AppointmentStore on the Appoints
// collection.
type AppointmentStore struct {
	coll *mongo.Collection
}

// NewAppointmentStore creates a MongoDB-backed appointment store.
func NewAppointmentStore(client *mongo.Client) *AppointmentStore {
	return &AppointmentStore{
		coll: client.Database(DatabaseName).Collection(AppointmentsCollection),
	}
}

// Ensure AppointmentStore implements store.AppointmentStore.
var _ store.AppointmentStore = (*AppointmentStore)(nil)

// List implements store.AppointmentStore.List. With a non-empty userEmail
// the result is restricted to appointments whose user_email matches; the
// relationship to the users collection is soft, so an unknown email simply
// yields an empty list.
func (s *AppointmentStore) List(ctx context.Context, userEmail string) ([]domain.Document, error) {
	filter := bson.M{}
	if userEmail != "" {
		filter["user_email"] = userEmail
	}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	docs := []domain.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return docs, nil
}

// Insert implements store.AppointmentStore.Insert.
func (s *AppointmentStore) Insert(ctx context.Context, doc domain.Document) (*store.InsertResult, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert appointment: %w", err)
	}
	return &store.InsertResult{InsertedID: res.InsertedID}, nil
}

// DeleteByID implements store.AppointmentStore.DeleteByID.
func (s *AppointmentStore) DeleteByID(ctx context.Context, id string) (*store.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete appointment: %w", err)
	}
	return &store.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
