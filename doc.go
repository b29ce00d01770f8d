// Package kompresscache implements a read/write-split cache over a primary
// node and a set of replicas. Writes always go to the primary and fail fast;
// reads go to a replica and retry once on the primary when the replica is
// unreachable or times out. With no replicas configured, reads use the
// primary directly.
//
// Components:
//   - backend.Conn: one node speaking the hash-field surface (Redis, or the
//     in-process BigCache/Ristretto backends for tests and single binaries).
//   - ConnSet: the topology (primary + replicas) the cache routes over.
//   - Schema[V]: decodes and rule-checks raw bytes on the read side.
//   - Loader: fetches authoritative bytes from the system of record.
//
// Every failure surfaced by the cache is classified as exactly one of
// connection, timeout or unexpected; match with errors.Is against
// ErrConnection, ErrTimeout and ErrUnexpected. HTTP consumers usually map
// these to 503, 504 and 500. Only connection and timeout failures on a
// replica trigger failover.
//
// Read-through pattern:
//
//	v, err := kompresscache.GetOrLoad(ctx, cache, "user:42", "profile",
//	    schema.JSON[Profile]{},
//	    kompresscache.LoaderFunc(func(ctx context.Context) ([]byte, error) {
//	        return fetchProfileJSON(ctx, 42)
//	    }))
//
// A cached value that is missing or fails its schema is reloaded, stored and
// returned in one call; a backend outage is reported as an error instead of
// being treated as a miss.
package kompresscache
