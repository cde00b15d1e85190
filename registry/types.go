package registry

import (
	"fmt"
	"reflect"

	"github.com/keymint/keymint/ident"
	"github.com/viant/x"
)

// Types holds named registrations of concrete Go types for registries
// whose item type is an interface. Registering the concrete types up
// front lets callers construct and store subtypes by name through
// EmplaceType without knowing the Go type at the call site.
type Types struct {
	x.Registry
}

// NewTypes creates a new type registry.
func NewTypes(options ...x.RegistryOption) *Types {
	return &Types{Registry: *x.NewRegistry(options...)}
}

// Lookup returns the registration for name, or nil when absent.
func (t *Types) Lookup(name string) *x.Type {
	return t.Registry.Lookup(name)
}

// EmplaceType constructs a new value of the registered type typeName and
// stores it in r under name. T is normally an interface type owned by
// the registry; the returned value is the same item narrowed to T, so
// callers can assert it back to the concrete subtype they registered.
// The rollback contract of Emplace applies: when the type is unknown or
// does not satisfy T, r is left untouched.
func EmplaceType[T any](r *Registry[T], types *Types, name, typeName string) (T, ident.UUID, error) {
	var zero T
	registered := types.Lookup(typeName)
	if registered == nil {
		return zero, ident.Invalid, newTypeNotRegisteredError(typeName)
	}
	rType := registered.Type
	for rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	value := reflect.New(rType).Interface()
	item, ok := value.(T)
	if !ok {
		return zero, ident.Invalid, fmt.Errorf("registry: type %q is %T, not %s", typeName, value, reflect.TypeFor[T]())
	}
	return r.Emplace(name, func() (T, error) { return item, nil })
}
