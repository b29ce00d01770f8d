package schema

import "fmt"

// Limit wraps another schema to reject oversized payloads before they reach
// the decoder. If MaxBytes <= 0, size limiting is disabled.
//
// Typical use: protect against oversized/malicious entries coming from a
// shared cache written by other parties.
type Limit[V any] struct {
	// Inner is the underlying schema being wrapped. It must be set.
	Inner Schema[V]
	// MaxBytes is the maximum permitted payload length. Longer payloads
	// fail validation without invoking Inner.
	MaxBytes int
}

func (l Limit[V]) Validate(raw []byte) (V, error) {
	if l.MaxBytes > 0 && len(raw) > l.MaxBytes {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(raw), l.MaxBytes)
	}
	return l.Inner.Validate(raw)
}
