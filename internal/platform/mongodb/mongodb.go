// Package mongodb implements the store interfaces on top of the MongoDB
// Go driver. One client is created at process startup and shared by every
// store; all per-request isolation is delegated to the driver and the
// server.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names are a contract with the existing database and must not
// be renamed.
const (
	DatabaseName           = "Health_DB"
	UsersCollection        = "users"
	TestsCollection        = "All_Tests"
	DoctorsCollection      = "Doctors"
	BlogsCollection        = "Blogs"
	AppointmentsCollection = "Appoints"
)

// connectTimeout bounds the initial ping only. Individual operations run
// without an extra deadline beyond the request context, matching the rest
// of the system's no-timeout policy.
const connectTimeout = 5 * time.Second

// Connect creates a MongoDB client for the given connection string using
// the stable v1 server API. The returned client dials lazily; use Ping to
// find out whether the deployment is actually reachable.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}
	return client, nil
}

// Ping verifies the deployment is reachable within a bounded window.
func Ping(ctx context.Context, client *mongo.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique index on users.email. The index is what
// closes the read-then-insert race in UpsertIfAbsent: two concurrent
// first-time sign-ins for the same email cannot both insert, the loser
// gets a duplicate-key error and re-reads the winner's document.
func EnsureIndexes(ctx context.Context, client *mongo.Client) error {
	users := client.Database(DatabaseName).Collection(UsersCollection)

	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique email index: %w", err)
	}
	return nil
}
