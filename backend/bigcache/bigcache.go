// Package bigcache implements backend.Conn on an in-process allegro/bigcache
// store. Hash fields are laid out as flat entries under composite keys, with
// a side index for enumeration. Useful for tests and single-process setups.
package bigcache

import (
	"context"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/utvyakta-public/kompress-cache/backend"
	"github.com/utvyakta-public/kompress-cache/internal/fields"
)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

type Conn struct {
	c  *bc.BigCache
	ix *fields.Index
}

var _ backend.Conn = (*Conn)(nil)

func New(cfg Config) (*Conn, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Conn{c: c, ix: fields.NewIndex()}, nil
}

func (c *Conn) HGet(_ context.Context, key, field string) ([]byte, bool, error) {
	b, err := c.c.Get(fields.Key(key, field))
	if err == bc.ErrEntryNotFound {
		// Entry expired under the index; drop the stale listing.
		c.ix.Forget(key, field)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
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
		value = []byte{}
	}
	if err := c.c.Set(fields.Key(key, field), value); err != nil {
		return err
	}
	c.ix.Add(key, field)
	return nil
}

func (c *Conn) HDel(_ context.Context, key string, fs ...string) error {
	for _, f := range fs {
		if err := c.c.Delete(fields.Key(key, f)); err != nil && err != bc.ErrEntryNotFound {
			return err
		}
	}
	c.ix.Forget(key, fs...)
	return nil
}

func (c *Conn) Ping(context.Context) error { return nil }

func (c *Conn) Close(context.Context) error { return c.c.Close() }

func (c *Conn) Addr() string { return "bigcache(local)" }
