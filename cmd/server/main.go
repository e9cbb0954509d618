// Package main implements the entry point for the Heart Health Center API
// server, the backend for the healthcare-appointment web application. It
// wires configuration, logging, the MongoDB-backed stores, the session
// token service and the Stripe payment gateway into the HTTP router.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/hearthealth/heart-health-api/internal/config"
	"github.com/hearthealth/heart-health-api/internal/platform/logger"
)

func main() {
	// Optional .env for local development; real deployments use the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.Setup(cfg.Server)
	logg.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"env", cfg.Server.Env,
		"log_level", cfg.Server.LogLevel)
	logg.Debug("configuration presence",
		"db_uri_present", cfg.Database.URI != "",
		"token_secret_present", cfg.Auth.TokenSecret != "",
		"payment_key_present", cfg.Payment.SecretKey != "")

	app, err := newApplication(context.Background(), cfg, logg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
