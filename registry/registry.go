package registry

import (
	"github.com/keymint/keymint/ident"
)

// Registry stores items of type T under two keys at once: a unique
// human-readable name chosen by the caller and a unique identifier
// minted by the registry itself. Items can be looked up, removed and
// enumerated through either key; the two indices are kept mutually
// consistent at all times.
//
// The registry holds the only long-term reference to each stored item.
// When T is a pointer or interface type, values returned by lookups
// borrow the stored item and remain meaningful until the corresponding
// Remove or Clear.
//
// Registry performs no internal locking. It is designed for a single
// logical writer; callers that mutate it from several goroutines must
// serialize access themselves (one mutex around the registry, or
// confinement to one goroutine). Go's built-in map permits any number of
// concurrent readers while no write is in flight, so read-only sharing
// without a lock is safe under that condition.
type Registry[T any] struct {
	identify func() ident.UUID
	names    map[string]ident.UUID
	items    map[ident.UUID]T
}

// New creates an empty registry. By default identifiers are minted with
// ident.GenerateRandom; see WithIdentifierFunc.
func New[T any](options ...Option[T]) *Registry[T] {
	r := &Registry[T]{
		identify: ident.GenerateRandom,
		names:    make(map[string]ident.UUID),
		items:    make(map[ident.UUID]T),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Add stores item under name and returns the freshly minted identifier.
// If name is already bound the registry is left untouched and the error
// matches ErrDuplicateName via errors.Is.
func (r *Registry[T]) Add(name string, item T) (ident.UUID, error) {
	_, id, err := r.Emplace(name, func() (T, error) { return item, nil })
	return id, err
}

// Emplace reserves name, invokes construct to build the item and stores
// the result. It returns the stored item together with its identifier.
//
// The insert is two-phase: the name reservation is taken first, and any
// failure before the item is committed removes the reservation again, so
// a failed Emplace leaves no observable trace. A constructor error is
// propagated to the caller unchanged.
func (r *Registry[T]) Emplace(name string, construct func() (T, error)) (T, ident.UUID, error) {
	var zero T
	if _, bound := r.names[name]; bound {
		return zero, ident.Invalid, NewDuplicateNameError(name)
	}
	id := r.identify()
	r.names[name] = id

	item, err := construct()
	if err != nil {
		// compensate: the reservation must not outlive a failed build
		delete(r.names, name)
		return zero, ident.Invalid, err
	}
	r.items[id] = item
	return item, id, nil
}

// Lookup returns the item bound to name.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	var zero T
	id, ok := r.names[name]
	if !ok {
		return zero, false
	}
	item, ok := r.items[id]
	return item, ok
}

// LookupByID returns the item bound to id.
func (r *Registry[T]) LookupByID(id ident.UUID) (T, bool) {
	item, ok := r.items[id]
	return item, ok
}

// LookupWithID returns the item bound to name together with its
// identifier.
func (r *Registry[T]) LookupWithID(name string) (T, ident.UUID, bool) {
	var zero T
	id, ok := r.names[name]
	if !ok {
		return zero, ident.Invalid, false
	}
	item, ok := r.items[id]
	if !ok {
		return zero, ident.Invalid, false
	}
	return item, id, true
}

// LookupWithName returns the item bound to id together with its name.
// Like NameByID this walks the name index.
func (r *Registry[T]) LookupWithName(id ident.UUID) (T, string, bool) {
	var zero T
	item, ok := r.items[id]
	if !ok {
		return zero, "", false
	}
	name, ok := r.NameByID(id)
	if !ok {
		return zero, "", false
	}
	return item, name, true
}

// IDByName returns the identifier bound to name.
func (r *Registry[T]) IDByName(name string) (ident.UUID, bool) {
	id, ok := r.names[name]
	return id, ok
}

// NameByID returns the name bound to id. The name index is the only
// structure holding names, so this is an O(n) reverse scan; treat it as
// a diagnostic operation, not a hot path.
func (r *Registry[T]) NameByID(id ident.UUID) (string, bool) {
	for name, bound := range r.names {
		if bound == id {
			return name, true
		}
	}
	return "", false
}

// Remove deletes the entry bound to name from both indices and reports
// whether such an entry existed.
func (r *Registry[T]) Remove(name string) bool {
	id, ok := r.names[name]
	if !ok {
		return false
	}
	delete(r.names, name)
	delete(r.items, id)
	return true
}

// RemoveByID deletes the entry bound to id from both indices and reports
// whether such an entry existed. It shares the reverse scan cost of
// NameByID.
func (r *Registry[T]) RemoveByID(id ident.UUID) bool {
	name, ok := r.NameByID(id)
	if !ok {
		return false
	}
	delete(r.names, name)
	delete(r.items, id)
	return true
}

// Clear removes every entry.
func (r *Registry[T]) Clear() {
	r.names = make(map[string]ident.UUID)
	r.items = make(map[ident.UUID]T)
}

// Size returns the number of stored entries.
func (r *Registry[T]) Size() int {
	return len(r.items)
}

// IsEmpty reports whether the registry holds no entries.
func (r *Registry[T]) IsEmpty() bool {
	return len(r.items) == 0
}
