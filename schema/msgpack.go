package schema

import "github.com/vmihailenco/msgpack/v5"

// Msgpack validates values stored with vmihailenco/msgpack/v5. The zero
// value is ready to use.
//
// Msgpack is compact and fast; be mindful of struct tag differences vs JSON.
// Use `msgpack:"fieldName"` tags if you need explicit control.
type Msgpack[V any] struct{}

var _ Schema[struct{}] = Msgpack[struct{}]{}

func (Msgpack[V]) Validate(raw []byte) (V, error) {
	var v V
	if err := msgpack.Unmarshal(raw, &v); err != nil {
		return v, err
	}
	if err := checkRules(v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}
