package kompresscache

import "context"

// Loader produces authoritative bytes for one key/field when the cache has
// nothing valid to serve. Implementations talk to the system of record; the
// cache stores whatever they return, verbatim.
type Loader interface {
	Load(ctx context.Context) ([]byte, error)
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(ctx context.Context) ([]byte, error)

func (f LoaderFunc) Load(ctx context.Context) ([]byte, error) { return f(ctx) }
