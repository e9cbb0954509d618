// Package config defines the application's configuration structure and
// loading. All settings come from environment variables (a .env file is
// loaded by main before Load runs); validation happens once at startup so
// a misconfigured process fails fast instead of failing per-request.
package config
