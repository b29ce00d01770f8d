package kompresscache

import (
	"context"
	"errors"

	"github.com/utvyakta-public/kompress-cache/backend"
)

const (
	opHGet    = "hget"
	opHGetAll = "hgetall"
	opHSet    = "hset"
	opHDel    = "hdel"
	opPing    = "ping" // primary-only, never routed through the table
)

type access int

const (
	accessRead access = iota + 1
	accessWrite
)

// opAccess fixes each command's routing class. A command missing from the
// table fails loudly instead of guessing a side.
var opAccess = map[string]access{
	opHGet:    accessRead,
	opHGetAll: accessRead,
	opHSet:    accessWrite,
	opHDel:    accessWrite,
}

var errUnroutedOp = errors.New("kompresscache: operation missing from routing table")

// failoverEligible reports whether a replica failure of this kind may retry
// on the primary. Unexpected errors are not link problems; the primary would
// refuse them the same way, so they surface immediately.
func failoverEligible(k Kind) bool {
	return k == KindConnection || k == KindTimeout
}

func (c *cache) route(ctx context.Context, op string, run func(backend.Conn) error) error {
	switch opAccess[op] {
	case accessRead:
		return c.readPath(ctx, op, run)
	case accessWrite:
		return c.writePath(op, run)
	default:
		return &Error{Kind: KindUnexpected, Op: op, Err: errUnroutedOp}
	}
}

// readPath runs op on one replica, falling back to the primary at most once.
// The fallback consumes the read's whole retry budget: a second replica is
// never tried, and a primary failure after failover is final. A read whose
// own caller context is already dead does not fail over at all: the primary
// attempt would fail the same way.
func (c *cache) readPath(ctx context.Context, op string, run func(backend.Conn) error) error {
	target, isReplica := c.readTarget()
	err := run(target)
	if err == nil {
		return nil
	}
	cerr := classify(op, target.Addr(), err)

	if isReplica && failoverEligible(cerr.Kind) && ctx.Err() == nil {
		c.hooks.Failover(op, target.Addr(), cerr)
		c.log.Warn("replica read failed; retrying on primary", Fields{
			"op":      op,
			"replica": target.Addr(),
			"kind":    cerr.Kind.String(),
			"err":     err,
		})
		primary := c.conns.primary
		perr := run(primary)
		if perr == nil {
			return nil
		}
		cerr = classify(op, primary.Addr(), perr)
	}

	c.hooks.BackendError(op, cerr.Kind)
	return cerr
}

// writePath runs op on the primary and fails fast. Writes are never retried:
// a retry could reorder with a later write that already succeeded.
func (c *cache) writePath(op string, run func(backend.Conn) error) error {
	p := c.conns.primary
	if err := run(p); err != nil {
		cerr := classify(op, p.Addr(), err)
		c.hooks.BackendError(op, cerr.Kind)
		return cerr
	}
	return nil
}

func (c *cache) readTarget() (backend.Conn, bool) {
	n := len(c.conns.replicas)
	if n == 0 {
		return c.conns.primary, false
	}
	i := c.picker.Pick(n)
	if i < 0 || i >= n {
		i = 0 // out-of-range picks settle on the first replica
	}
	return c.conns.replicas[i], true
}
