package kompresscache

import (
	"context"
	"errors"
	"fmt"

	"github.com/utvyakta-public/kompress-cache/schema"
)

// Reasons reported to Hooks.Refresh.
const (
	refreshMiss    = "miss"
	refreshInvalid = "invalid"
)

// GetOrLoad returns the validated value stored under key/field, refreshing
// it from loader when the entry is missing or fails validation.
//
// The flow is fetch, validate, and on miss or invalid: load, store, validate
// again. An absent entry and an empty one are both misses. The loader runs
// at most once per call, and never when the fetch itself fails: a backend
// error is not a miss, and loading over it would hide an outage behind
// traffic to the system of record.
//
// Freshly loaded bytes are stored before the final validation, so even a
// loader that produces rule-breaking output leaves cache and source in
// agreement; the validation error then surfaces to the caller.
//
// GetOrLoad is a free function because Go methods cannot carry type
// parameters. It works with any Cache; when c was built by New with
// Options.DedupeLoads, concurrent refreshes of the same key/field share one
// loader call.
func GetOrLoad[V any](ctx context.Context, c Cache, key, field string, sch schema.Schema[V], loader Loader) (V, error) {
	var zero V
	if sch == nil {
		return zero, errors.New("kompresscache: schema is required")
	}
	if loader == nil {
		return zero, errors.New("kompresscache: loader is required")
	}

	raw, ok, err := c.HGet(ctx, key, field)
	if err != nil {
		return zero, err
	}
	// An empty stored value counts as absent: there is nothing to validate,
	// and a permissive schema would otherwise hand the caller an empty value
	// without ever consulting the loader.
	present := ok && len(raw) > 0
	if present {
		if v, verr := sch.Validate(raw); verr == nil {
			return v, nil
		}
	}

	reason := refreshMiss
	if present {
		reason = refreshInvalid
	}
	fresh, err := refreshEntry(ctx, c, key, field, reason, loader)
	if err != nil {
		return zero, err
	}

	v, verr := sch.Validate(fresh)
	if verr != nil {
		return zero, fmt.Errorf("%w: loaded value for %s/%s failed validation: %w", ErrUnexpected, key, field, verr)
	}
	return v, nil
}

// refresher is how the concrete cache takes over the load+store leg, adding
// hooks, logging and optional dedupe. Foreign Cache implementations fall
// back to the plain inline leg.
type refresher interface {
	refresh(ctx context.Context, key, field, reason string, loader Loader) ([]byte, error)
}

func refreshEntry(ctx context.Context, c Cache, key, field, reason string, loader Loader) ([]byte, error) {
	if r, can := c.(refresher); can {
		return r.refresh(ctx, key, field, reason, loader)
	}
	return loadStore(ctx, c, key, field, loader)
}

func loadStore(ctx context.Context, c Cache, key, field string, loader Loader) ([]byte, error) {
	b, err := loader.Load(ctx)
	if err != nil {
		// Loader code is the caller's; its failures are not retried here
		// and classify as unexpected.
		return nil, fmt.Errorf("%w: load %s/%s: %w", ErrUnexpected, key, field, err)
	}
	if err := c.HSet(ctx, key, field, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (c *cache) refresh(ctx context.Context, key, field, reason string, loader Loader) ([]byte, error) {
	c.hooks.Refresh(key, field, reason)
	c.log.Debug("refreshing entry", Fields{"key": key, "field": field, "reason": reason})

	if c.flight == nil {
		return loadStore(ctx, c, key, field, loader)
	}
	v, err, _ := c.flight.Do(key+"\x1f"+field, func() (any, error) {
		return loadStore(ctx, c, key, field, loader)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
