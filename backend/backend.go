// Package backend defines the connection abstraction used by kompress-cache.
//
// A Conn is one logical connection (or pool) to a single backend node. The
// cache core never talks to a node any other way: the primary and every
// replica are each a Conn, and routing decides which Conn an operation runs
// on. Implementations MUST be byte-for-byte transparent: HGet must return
// exactly the []byte previously passed to HSet for the same key and field
// (no prepended metadata, no re-encoding), because callers validate the raw
// stored bytes against their own schemas.
//
// Each Conn owns its per-command timeout. Implementations that perform I/O
// must bound every call by that timeout (deriving a child context and
// cancelling it on all exit paths) so a stuck node cannot hold a caller
// beyond the configured duration.
package backend

import (
	"context"
)

// Conn is a minimal hash-field store bound to one backend node.
// Must be safe for concurrent use.
//
// Error contract: a missing field is (nil, false, nil), never an error.
// Errors are returned raw; classification into the cache's error taxonomy
// happens above this layer, so implementations should not wrap transport
// errors in types of their own.
type Conn interface {
	// HGet returns the value of field in the hash stored at key.
	// (value, true, nil) on hit; (nil, false, nil) on miss.
	HGet(ctx context.Context, key, field string) ([]byte, bool, error)

	// HGetAll returns all fields and values of the hash stored at key.
	// A missing key yields an empty (possibly nil) map and no error.
	HGetAll(ctx context.Context, key string) (map[string][]byte, error)

	// HSet stores value under field in the hash stored at key,
	// creating the hash if absent and overwriting the field if present.
	// A nil value is stored as an empty one: a later HGet reports it as
	// present with zero-length bytes, never as a miss.
	HSet(ctx context.Context, key, field string, value []byte) error

	// HDel removes the given fields from the hash stored at key.
	// Absent fields are not an error.
	HDel(ctx context.Context, key string, fields ...string) error

	// Ping verifies the node is reachable.
	Ping(ctx context.Context) error

	// Close releases resources. Safe to call more than once.
	Close(ctx context.Context) error

	// Addr identifies the node for logs and hooks (e.g. "10.0.0.5:6379",
	// or a scheme-like name for in-process implementations).
	Addr() string
}
