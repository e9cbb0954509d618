// Package api implements the HTTP handlers for the Heart Health Center
// server: session issuance and teardown, the five resource collections,
// and payment-intent creation. Handlers depend on the store and service
// interfaces only; all wiring happens in cmd/server.
//
// Route paths, cookie attributes and response shapes are a contract with
// the deployed client application and must be preserved bit-exact.
package api
