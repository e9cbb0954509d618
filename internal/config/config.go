package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Payment  PaymentConfig  `mapstructure:"payment"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// Env selects cookie security attributes: "production" sets
	// Secure+SameSite=None on the session cookie, anything else uses the
	// lenient development attributes.
	Env string `mapstructure:"env" validate:"required,oneof=development production"`

	// CORSOrigins is the explicit allow-list of browser origins permitted
	// to make credentialed cross-origin requests.
	CORSOrigins []string `mapstructure:"cors_origins" validate:"required,min=1"`
}

// IsProduction reports whether the server runs with production cookie and
// CORS semantics.
func (c ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

// DatabaseConfig contains all document-store related settings.
type DatabaseConfig struct {
	URI string `mapstructure:"uri" validate:"required"`
}

// AuthConfig contains the session token settings.
type AuthConfig struct {
	// TokenSecret signs session tokens. Shorter than 32 characters is a
	// startup error: a secret mismatch cannot be recovered per-request.
	TokenSecret string `mapstructure:"token_secret" validate:"required,min=32"`
}

// PaymentConfig contains the payment processor settings. An empty secret
// key is tolerated at startup; intent creation then fails per-request.
type PaymentConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}
