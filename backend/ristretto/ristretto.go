// Package ristretto implements backend.Conn on an in-process
// dgraph-io/ristretto store, with the same composite-key field layout as the
// bigcache backend. Writes call Wait so a successful HSet is immediately
// readable, trading admission throughput for read-your-write behavior.
package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/utvyakta-public/kompress-cache/backend"
	"github.com/utvyakta-public/kompress-cache/internal/fields"
)

var ErrRejected = errors.New("ristretto backend: write rejected under pressure")

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
	// TTL applies to every entry; 0 keeps entries until evicted by cost.
	TTL time.Duration
}

type Conn struct {
	c   *rc.Cache
	ix  *fields.Index
	ttl time.Duration
}

var _ backend.Conn = (*Conn)(nil)

func New(cfg Config) (*Conn, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto backend: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Conn{c: c, ix: fields.NewIndex(), ttl: cfg.TTL}, nil
}

func (c *Conn) HGet(_ context.Context, key, field string) ([]byte, bool, error) {
	v, ok := c.c.Get(fields.Key(key, field))
	if !ok {
		c.ix.Forget(key, field)
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		c.c.Del(fields.Key(key, field))
		c.ix.Forget(key, field)
		return nil, false, nil
	}
	return b, true, nil
}

func (c *Conn) HGetAll(ctx context.Context, key string) (map[string][]byte, error) {
	out := make(map[string][]byte)
	for _, f := range c.ix.Fields(key) {
		b, ok, err := c.HGet(ctx, key, f)
		if err != nil {
			return nil, err
		}
		if ok {
			out[f] = b
		}
	}
	return out, nil
}

func (c *Conn) HSet(_ context.Context, key, field string, value []byte) error {
	if value == nil {
		// A nil write must round-trip as a present empty value, not trip
		// the unexpected-shape check in HGet.
		value = []byte{}
	}
	if !c.c.SetWithTTL(fields.Key(key, field), value, int64(len(value)), c.ttl) {
		return ErrRejected
	}
	c.c.Wait()
	c.ix.Add(key, field)
	return nil
}

func (c *Conn) HDel(_ context.Context, key string, fs ...string) error {
	for _, f := range fs {
		c.c.Del(fields.Key(key, f))
	}
	c.ix.Forget(key, fs...)
	return nil
}

func (c *Conn) Ping(context.Context) error { return nil }

func (c *Conn) Close(context.Context) error {
	c.c.Wait()
	c.c.Close()
	return nil
}

func (c *Conn) Addr() string { return "ristretto(local)" }

// Metrics exposes the underlying counters when Config.Metrics was set.
func (c *Conn) Metrics() *rc.Metrics { return c.c.Metrics }
