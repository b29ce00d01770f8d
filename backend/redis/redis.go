// Package redis implements backend.Conn on top of go-redis for a single
// Redis node addressed as host:port.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/utvyakta-public/kompress-cache/backend"
)

// DefaultTimeout bounds each command when Config.Timeout is zero.
const DefaultTimeout = 5 * time.Second

var ErrNoAddr = errors.New("redis backend: no address")

// Config describes one Redis node.
// Only Addr is required; the zero value of everything else is usable.
type Config struct {
	Addr     string // "host:port"
	Password string
	DB       int

	// Timeout bounds every command issued through this conn (dial, read,
	// write, and the context deadline). 0 means DefaultTimeout.
	Timeout time.Duration

	// Client, when set, is used instead of building a client from Addr.
	// Addr then only identifies the node in logs.
	Client goredis.UniversalClient
	// CloseClient releases a caller-provided Client on Close. Clients built
	// from Addr are always owned and always closed.
	CloseClient bool
}

// Conn is a backend.Conn bound to one Redis node.
type Conn struct {
	rdb         goredis.UniversalClient
	addr        string
	timeout     time.Duration
	closeClient bool
}

var _ backend.Conn = (*Conn)(nil)

// New builds a Conn for the node described by cfg.
//
// The underlying client keeps internal retries disabled: failover on read
// errors is the routing layer's job, and it must observe exactly one attempt
// per node to keep its retry boundary intact.
func New(cfg Config) (*Conn, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if cfg.Client != nil {
		return &Conn{
			rdb:         cfg.Client,
			addr:        cfg.Addr,
			timeout:     timeout,
			closeClient: cfg.CloseClient,
		}, nil
	}

	if cfg.Addr == "" {
		return nil, ErrNoAddr
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:                  cfg.Addr,
		Password:              cfg.Password,
		DB:                    cfg.DB,
		DialTimeout:           timeout,
		ReadTimeout:           timeout,
		WriteTimeout:          timeout,
		MaxRetries:            -1, // router owns retries
		ContextTimeoutEnabled: true,
	})
	return &Conn{
		rdb:         rdb,
		addr:        cfg.Addr,
		timeout:     timeout,
		closeClient: true,
	}, nil
}

// bound derives the per-command context. The cancel func must run on every
// exit path so the pooled connection is released even on timeout.
func (c *Conn) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Conn) HGet(ctx context.Context, key, field string) ([]byte, bool, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	b, err := c.rdb.HGet(ctx, key, field).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *Conn) HGetAll(ctx context.Context, key string) (map[string][]byte, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	m, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(m))
	for f, v := range m {
		out[f] = []byte(v)
	}
	return out, nil
}

func (c *Conn) HSet(ctx context.Context, key, field string, value []byte) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	return c.rdb.HSet(ctx, key, field, value).Err()
}

func (c *Conn) HDel(ctx context.Context, key string, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	ctx, cancel := c.bound(ctx)
	defer cancel()

	return c.rdb.HDel(ctx, key, fields...).Err()
}

func (c *Conn) Ping(ctx context.Context) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	return c.rdb.Ping(ctx).Err()
}

// Close releases the underlying client when this conn owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (c *Conn) Close(context.Context) error {
	if c.closeClient {
		if err := c.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}

func (c *Conn) Addr() string { return c.addr }
