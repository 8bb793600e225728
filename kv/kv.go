// Package kv provides the durable key-value stores used to persist
// inventory snapshots. A store keeps whole values under well-known keys;
// writes replace the previous value atomically from the reader's point of
// view, so a concurrent reader never observes a partial snapshot.
package kv

import "context"

// SnapshotKey is the fixed key the inventory snapshot lives under.
const SnapshotKey = "inventory.jsonl"

// Store is a minimal durable key-value store.
type Store interface {
	// Get returns the value stored under key. A missing key is not an
	// error: it returns found == false with a nil error.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
