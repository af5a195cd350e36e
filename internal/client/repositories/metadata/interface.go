// Package metadata is a small key-value store in the client's local sqlite
// database. The session manager keeps the bearer token here so a session
// survives process restarts.
package metadata

import "context"

// Repository stores opaque values by key. Get returns (nil, nil) when the
// key is absent; absence is a normal state, not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
