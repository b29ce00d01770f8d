package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	kompresscache "github.com/utvyakta-public/kompress-cache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	FailoverEvery     uint64
	RefreshEvery      uint64
	BackendErrorEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	failoverCtr   atomic.Uint64
	refreshCtr    atomic.Uint64
	backendErrCtr atomic.Uint64
}

var _ kompresscache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Failover(op, addr string, err error) {
	if h.l == nil || !sample(h.opts.FailoverEvery, &h.failoverCtr) {
		return
	}
	h.l.Warn("kompresscache.failover",
		"op", op,
		"replica", addr,
		"err", err)
}

func (h *Hooks) Refresh(key, field, reason string) {
	if h.l == nil || !sample(h.opts.RefreshEvery, &h.refreshCtr) {
		return
	}
	h.l.Debug("kompresscache.refresh",
		"key", h.redact(key),
		"field", h.redact(field),
		"reason", reason)
}

func (h *Hooks) BackendError(op string, kind kompresscache.Kind) {
	if h.l == nil || !sample(h.opts.BackendErrorEvery, &h.backendErrCtr) {
		return
	}
	h.l.Warn("kompresscache.backend_error",
		"op", op,
		"kind", kind.String())
}
