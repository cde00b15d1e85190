package keymint

import (
	"fmt"
	"reflect"
)

// As narrows an untyped payload handed through an engine callback to the
// concrete type the callee expects. Absence of the expected type is an
// ordinary negative result.
func As[T any](payload interface{}) (T, bool) {
	v, ok := payload.(T)
	return v, ok
}

// MustAs is As for call sites where the payload type is guaranteed by
// the caller; it panics on a mismatch instead of returning false.
func MustAs[T any](payload interface{}) T {
	v, ok := payload.(T)
	if !ok {
		panic(fmt.Sprintf("keymint: payload is %T, not %s", payload, reflect.TypeFor[T]()))
	}
	return v
}
