package registry

import "github.com/keymint/keymint/ident"

// Option customises a Registry at construction time.
type Option[T any] func(*Registry[T])

// WithIdentifierFunc overrides how the registry mints identifiers for
// new entries. The default is ident.GenerateRandom; tests typically
// substitute ident.GenerateSequential or a fixed-seed source to make
// assigned identifiers reproducible.
func WithIdentifierFunc[T any](identify func() ident.UUID) Option[T] {
	return func(r *Registry[T]) {
		r.identify = identify
	}
}
