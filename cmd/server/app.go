package main

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hearthealth/heart-health-api/internal/config"
	"github.com/hearthealth/heart-health-api/internal/platform/mongodb"
	"github.com/hearthealth/heart-health-api/internal/service/auth"
	"github.com/hearthealth/heart-health-api/internal/service/payment"
	"github.com/hearthealth/heart-health-api/internal/store"
)

// application holds every long-lived dependency, constructed once at
// startup and injected into handlers. No component reaches for shared
// module-level state.
type application struct {
	config *config.Config
	logger *slog.Logger

	mongoClient *mongo.Client

	users        store.UserStore
	tests        store.CatalogStore
	doctors      store.CatalogStore
	blogs        store.CatalogStore
	appointments store.AppointmentStore

	tokenService   auth.TokenService
	paymentService payment.IntentCreator
}

// newApplication builds the dependency graph. An unreachable document
// store is logged but does not abort startup: the listener comes up and
// individual requests fail against the disconnected store until it
// becomes reachable. A missing or weak token secret, by contrast, is
// fatal here.
func newApplication(ctx context.Context, cfg *config.Config, logg *slog.Logger) (*application, error) {
	client, err := mongodb.Connect(ctx, cfg.Database.URI)
	if err != nil {
		return nil, err
	}

	if err := mongodb.Ping(ctx, client); err != nil {
		logg.Error("document store unreachable at startup, continuing anyway",
			"error", err)
	} else {
		logg.Info("connected to document store")
		// The unique email index backs the create-only user upsert.
		indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := mongodb.EnsureIndexes(indexCtx, client); err != nil {
			logg.Error("failed to ensure indexes", "error", err)
		}
	}

	tokenService, err := auth.NewTokenService(cfg.Auth.TokenSecret, auth.DefaultTokenLifetime)
	if err != nil {
		return nil, err
	}

	return &application{
		config:         cfg,
		logger:         logg,
		mongoClient:    client,
		users:          mongodb.NewUserStore(client),
		tests:          mongodb.NewCatalogStore(client, mongodb.TestsCollection),
		doctors:        mongodb.NewCatalogStore(client, mongodb.DoctorsCollection),
		blogs:          mongodb.NewCatalogStore(client, mongodb.BlogsCollection),
		appointments:   mongodb.NewAppointmentStore(client),
		tokenService:   tokenService,
		paymentService: payment.NewStripeIntentCreator(cfg.Payment.SecretKey),
	}, nil
}

// cleanup releases long-lived resources during shutdown.
func (app *application) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.mongoClient.Disconnect(ctx); err != nil {
		app.logger.Error("failed to disconnect document store", "error", err)
	}
}
