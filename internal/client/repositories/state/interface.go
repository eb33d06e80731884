// Package state persists small key-value entries that must survive a client
// restart, such as the session token and the serialized user record. Any
// backend with get/set/delete semantics satisfies the contract; the default
// implementation is a local SQLite table.
package state

import (
	"context"
)

// Repository is the persisted key-value capability the session layer
// depends on. Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
