package registry

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is returned by Add and Emplace when the target name is
// already bound. Callers detect it with errors.Is; the concrete error
// additionally carries the offending name.
var ErrDuplicateName = errors.New("registry: name already exists")

// NewDuplicateNameError wraps ErrDuplicateName with the offending name.
func NewDuplicateNameError(name string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateName, name)
}

func newTypeNotRegisteredError(typeName string) error {
	return fmt.Errorf("registry: type %q not registered", typeName)
}
