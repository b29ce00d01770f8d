package kompresscache

import (
	"context"
)

// Cache is the routed hash-cache API. Writes always hit the primary and fail
// fast. Reads prefer a replica and retry once on the primary when the replica
// is unreachable or slow; with no replicas they go straight to the primary.
//
// Values are opaque bytes: the cache never decodes what it stores. Schema
// checking happens in GetOrLoad, on the caller's side of the boundary.
type Cache interface {
	// Reads.
	HGet(ctx context.Context, key, field string) (value []byte, ok bool, err error)
	HGetAll(ctx context.Context, key string) (map[string][]byte, error)

	// Writes.
	HSet(ctx context.Context, key, field string, value []byte) error
	HDel(ctx context.Context, key string, fields ...string) error

	// Ping checks the primary. Replica health shows up as failovers.
	Ping(ctx context.Context) error

	// Close releases every conn in the set, primary last.
	Close(ctx context.Context) error
}

// Options tune the cache. Only Conns is required; others have sensible
// defaults.
type Options struct {
	// Required
	Conns *ConnSet

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
	Picker Picker // replica selection; nil => uniform random

	// DedupeLoads collapses concurrent GetOrLoad refreshes of the same
	// key/field into a single loader call shared by all waiters.
	DedupeLoads bool
}

func New(opts Options) (Cache, error) {
	return newCache(opts)
}
