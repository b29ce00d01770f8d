package schema

import "encoding/json"

// JSON validates values stored as JSON documents. The zero value is ready
// to use.
type JSON[V any] struct{}

var _ Schema[struct{}] = JSON[struct{}]{}

func (JSON[V]) Validate(raw []byte) (V, error) {
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, err
	}
	if err := checkRules(v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

// Encode renders v as JSON for storing.
func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
