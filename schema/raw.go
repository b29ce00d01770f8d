package schema

// Bytes is an identity schema for []byte values: every payload is valid and
// returned unchanged. Useful when the caller wants routing and failover but
// does its own decoding.
type Bytes struct{}

func (Bytes) Validate(raw []byte) ([]byte, error) { return raw, nil }
func (Bytes) Encode(b []byte) ([]byte, error)     { return b, nil }

// String validates values as plain strings. By convention this assumes UTF-8
// and performs no further checks.
type String struct{}

func (String) Validate(raw []byte) (string, error) { return string(raw), nil }
func (String) Encode(s string) ([]byte, error)     { return []byte(s), nil }
