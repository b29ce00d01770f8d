// Package schema decodes and checks raw cached bytes.
//
// A Schema turns the bytes stored under a hash field back into a typed value
// and decides whether that value is acceptable: undecodable bytes and values
// that break the type's rules both fail validation. The cache treats a failed
// validation like an absent entry and refreshes it from the loader.
//
// Struct rules are declared with `validate:"..."` tags and enforced by
// go-playground/validator. Non-struct types skip the rule check and validate
// on decodability alone.
package schema

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Schema validates the raw bytes of one cached entry and yields the typed
// value. Implementations must be safe for concurrent use.
type Schema[V any] interface {
	Validate(raw []byte) (V, error)
}

// Func adapts a plain function to Schema.
type Func[V any] func(raw []byte) (V, error)

func (f Func[V]) Validate(raw []byte) (V, error) { return f(raw) }

var structRules = validator.New()

// checkRules applies `validate` tags when v is a struct or points to one.
// Other kinds carry no tags, so there is nothing to check.
func checkRules(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return structRules.Struct(rv.Interface())
}
