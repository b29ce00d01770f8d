package kompresscache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"syscall"
)

// Kind classifies a backend failure. Every error surfaced by the cache
// carries exactly one Kind; callers branch on it to decide how to respond
// (typically 503 for connection failures, 504 for timeouts, 500 otherwise).
type Kind int

const (
	// KindConnection: the node could not be reached or the link died
	// (refused, reset, unreachable, DNS failure, torn connection).
	KindConnection Kind = iota
	// KindTimeout: the command ran out of time.
	KindTimeout
	// KindUnexpected: everything else, including backend-side errors
	// such as WRONGTYPE or OOM. Never triggers failover.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindTimeout:
		return "timeout"
	default:
		return "unexpected"
	}
}

// Sentinels for errors.Is. Every *Error matches exactly one of them.
// GetOrLoad additionally wraps loader and post-load validation failures
// with ErrUnexpected, so the taxonomy stays total across the whole surface.
var (
	ErrConnection = errors.New("kompresscache: connection failure")
	ErrTimeout    = errors.New("kompresscache: timeout")
	ErrUnexpected = errors.New("kompresscache: unexpected failure")
)

// Error is a classified backend failure. Err holds the original error from
// the driver, untouched, so callers can still reach driver-specific values
// through errors.As.
type Error struct {
	Kind Kind
	Op   string // command that failed: "hget", "hset", ...
	Addr string // node it ran against
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.Kind, e.Op, e.Addr, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrConnection:
		return e.Kind == KindConnection
	case ErrTimeout:
		return e.Kind == KindTimeout
	case ErrUnexpected:
		return e.Kind == KindUnexpected
	}
	return false
}

// classify wraps a raw driver error with its Kind. Total: any non-nil error
// maps to exactly one Kind, and the same error always maps to the same Kind.
func classify(op, addr string, err error) *Error {
	return &Error{Kind: kindOf(err), Op: op, Addr: addr, Err: err}
}

func kindOf(err error) Kind {
	// Deadline checks come first: expired connections surface as net.Error
	// with Timeout() true, and those must not be mistaken for link failures.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return KindTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}

	switch {
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNABORTED),
		errors.Is(err, syscall.EPIPE),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.Is(err, syscall.ENETUNREACH),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, net.ErrClosed):
		return KindConnection
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return KindConnection
	}

	return KindUnexpected
}
