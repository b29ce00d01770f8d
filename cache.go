package kompresscache

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/utvyakta-public/kompress-cache/backend"
)

type cache struct {
	conns  *ConnSet
	log    Logger
	hooks  Hooks
	picker Picker
	flight *singleflight.Group // nil unless DedupeLoads
}

func newCache(opts Options) (*cache, error) {
	if opts.Conns == nil {
		return nil, fmt.Errorf("kompresscache: conns are required")
	}

	c := &cache{conns: opts.Conns}

	// defaults
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.picker = coalesce[Picker](opts.Picker, randomPicker{})
	if opts.DedupeLoads {
		c.flight = new(singleflight.Group)
	}

	if n := opts.Conns.NumReplicas(); n > 0 {
		c.log.Info("cache ready", Fields{
			"primary":  opts.Conns.Primary().Addr(),
			"replicas": n,
		})
	} else {
		c.log.Warn("no replicas configured; reads fall through to the primary", Fields{
			"primary": opts.Conns.Primary().Addr(),
		})
	}
	return c, nil
}

func (c *cache) HGet(ctx context.Context, key, field string) ([]byte, bool, error) {
	var (
		b  []byte
		ok bool
	)
	err := c.route(ctx, opHGet, func(conn backend.Conn) error {
		var err error
		b, ok, err = conn.HGet(ctx, key, field)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return b, ok, nil
}

func (c *cache) HGetAll(ctx context.Context, key string) (map[string][]byte, error) {
	var m map[string][]byte
	err := c.route(ctx, opHGetAll, func(conn backend.Conn) error {
		var err error
		m, err = conn.HGetAll(ctx, key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (c *cache) HSet(ctx context.Context, key, field string, value []byte) error {
	return c.route(ctx, opHSet, func(conn backend.Conn) error {
		return conn.HSet(ctx, key, field, value)
	})
}

func (c *cache) HDel(ctx context.Context, key string, fields ...string) error {
	return c.route(ctx, opHDel, func(conn backend.Conn) error {
		return conn.HDel(ctx, key, fields...)
	})
}

// Ping probes the primary only. Replicas are never pinged: their health is
// observed per-read and handled by failover, not by a health check.
func (c *cache) Ping(ctx context.Context) error {
	p := c.conns.Primary()
	if err := p.Ping(ctx); err != nil {
		cerr := classify(opPing, p.Addr(), err)
		c.hooks.BackendError(opPing, cerr.Kind)
		return cerr
	}
	return nil
}

func (c *cache) Close(ctx context.Context) error {
	var errs []error
	for _, r := range c.conns.replicas {
		if err := r.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	// primary last, so replica teardown cannot outlive it
	if err := c.conns.primary.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
