package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// defaultCORSOrigins are the client application's development origins.
// They match what the frontend is served from and are always part of the
// allow-list unless overridden.
var defaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
}

// envBindings maps config keys to the environment variables the deployment
// already uses. Names are a contract with existing .env files and must not
// change.
var envBindings = map[string]string{
	"server.port":         "PORT",
	"server.log_level":    "LOG_LEVEL",
	"server.env":          "APP_ENV",
	"server.cors_origins": "CORS_ORIGINS",
	"database.uri":        "DB_URI",
	"auth.token_secret":   "ACCESS_TOKEN_SECRET",
	"payment.secret_key":  "PAYMENT_SECRET_KEY",
}

// Load reads configuration from environment variables, applies defaults,
// and validates the result. Returns a populated Config or an error if a
// required setting is missing or malformed.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.cors_origins", defaultCORSOrigins)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
