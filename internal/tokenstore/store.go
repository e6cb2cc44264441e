// Package tokenstore keeps the session token handed out by the backend after
// login. The token is opaque and has no expiry managed here.
package tokenstore

import "context"

// Store is a single-value key-value store for the session token.
type Store interface {
	// Get returns the stored token and whether one is present.
	Get(ctx context.Context) (string, bool, error)
	// Set replaces the stored token.
	Set(ctx context.Context, token string) error
	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
