package api

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hearthealth/heart-health-api/internal/domain"
	"github.com/hearthealth/heart-health-api/internal/store"
)

// In-memory fakes for the store and payment interfaces. They implement
// the same contracts the MongoDB stores do (absent reads return nil,
// deletes of missing keys return zero counts, the user upsert is
// create-only) so handler tests exercise real wire behavior.

type fakeUserStore struct {
	users map[string]domain.Document
	err   error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]domain.Document{}}
}

func (f *fakeUserStore) List(ctx context.Context) ([]domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	docs := []domain.Document{}
	for _, doc := range f.users {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (f *fakeUserStore) UpsertIfAbsent(
	ctx context.Context,
	email string,
	doc domain.Document,
) (domain.Document, *store.InsertResult, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	if existing, ok := f.users[email]; ok {
		return existing, nil, nil
	}
	insert := domain.Document{}
	for k, v := range doc {
		insert[k] = v
	}
	insert["email"] = email
	insert["timestamp"] = time.Now().UnixMilli()
	f.users[email] = insert
	return nil, &store.InsertResult{InsertedID: email}, nil
}

func (f *fakeUserStore) DeleteByEmail(ctx context.Context, email string) (*store.DeleteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.users[email]; !ok {
		return &store.DeleteResult{DeletedCount: 0}, nil
	}
	delete(f.users, email)
	return &store.DeleteResult{DeletedCount: 1}, nil
}

type fakeCatalogStore struct {
	docs map[string]domain.Document
	err  error
}

func newFakeCatalogStore() *fakeCatalogStore {
	return &fakeCatalogStore{docs: map[string]domain.Document{}}
}

func (f *fakeCatalogStore) List(ctx context.Context) ([]domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	docs := []domain.Document{}
	for _, doc := range f.docs {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (f *fakeCatalogStore) GetByID(ctx context.Context, id string) (domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, store.ErrInvalidID
	}
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (f *fakeCatalogStore) Insert(ctx context.Context, doc domain.Document) (*store.InsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := primitive.NewObjectID()
	f.docs[id.Hex()] = doc
	return &store.InsertResult{InsertedID: id}, nil
}

func (f *fakeCatalogStore) DeleteByID(ctx context.Context, id string) (*store.DeleteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, store.ErrInvalidID
	}
	if _, ok := f.docs[id]; !ok {
		return &store.DeleteResult{DeletedCount: 0}, nil
	}
	delete(f.docs, id)
	return &store.DeleteResult{DeletedCount: 1}, nil
}

type fakeAppointmentStore struct {
	docs []domain.Document
	err  error
}

func (f *fakeAppointmentStore) List(ctx context.Context, userEmail string) ([]domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	docs := []domain.Document{}
	for _, doc := range f.docs {
		if userEmail == "" || doc.UserEmail() == userEmail {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (f *fakeAppointmentStore) Insert(ctx context.Context, doc domain.Document) (*store.InsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := primitive.NewObjectID()
	stored := domain.Document{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	f.docs = append(f.docs, stored)
	return &store.InsertResult{InsertedID: id}, nil
}

func (f *fakeAppointmentStore) DeleteByID(ctx context.Context, id string) (*store.DeleteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	for i, doc := range f.docs {
		if doc["_id"] == objectID {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return &store.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &store.DeleteResult{DeletedCount: 0}, nil
}

type fakeIntentCreator struct {
	clientSecret string
	err          error

	gotAmount int64
	called    bool
}

func (f *fakeIntentCreator) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	f.called = true
	f.gotAmount = amountCents
	if f.err != nil {
		return "", f.err
	}
	return f.clientSecret, nil
}
